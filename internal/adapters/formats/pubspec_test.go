package formats

import (
	"testing"

	"ulink-doctor/internal/domain/model"
)

func TestFindPubspecDependency_Scalar(t *testing.T) {
	raw := []byte(`
name: demo_app
dependencies:
  flutter:
    sdk: flutter
  ulink: ^1.2.3
`)
	st := FindPubspecDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "^1.2.3" {
		t.Fatalf("got %+v, want present ^1.2.3", st)
	}
}

func TestFindPubspecDependency_GitMapping(t *testing.T) {
	// git 依赖没有版本约束，State 仍为 present。
	raw := []byte(`
name: demo_app
dependencies:
  ulink_flutter:
    git: https://github.com/ulink-ly/ulink-flutter.git
`)
	st := FindPubspecDependency(raw, "ulink")
	if st.State != model.DependencyPresent {
		t.Fatalf("state = %s, want present", st.State)
	}
	if st.Version != "" {
		t.Fatalf("version = %q, want empty for git dependency", st.Version)
	}
}

func TestFindPubspecDependency_Commented(t *testing.T) {
	raw := []byte(`
name: demo_app
dependencies:
  flutter:
    sdk: flutter
  # ulink: ^1.2.3
`)
	if st := FindPubspecDependency(raw, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("state = %s, want commented", st.State)
	}
}

func TestFindPubspecDependency_Absent(t *testing.T) {
	raw := []byte(`
name: demo_app
dependencies:
  http: ^0.13.0
`)
	if st := FindPubspecDependency(raw, "ulink"); st.State != model.DependencyAbsent {
		t.Fatalf("state = %s, want absent", st.State)
	}
}

func TestFindPubspecDependency_CorruptYAMLStillScansComments(t *testing.T) {
	// YAML 解析失败时不中断：commented 探测走行扫描兜底。
	raw := []byte("dependencies:\n\t- broken\n# ulink: ^1.0.0\n")
	if st := FindPubspecDependency(raw, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("state = %s, want commented", st.State)
	}
}
