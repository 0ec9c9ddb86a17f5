package crossref

import "ulink-doctor/internal/domain/model"

// ValidateFlutterDependency 汇报 pubspec.yaml 中的 SDK 集成状态。
// Flutter 工程在双端校验之外追加这一条；原生工程不产出。
func ValidateFlutterDependency(st *model.DependencyStatus) model.Finding {
	return checkDependency(model.CheckFlutterDep, "Flutter", st)
}
