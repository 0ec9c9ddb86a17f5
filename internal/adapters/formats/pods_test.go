package formats

import (
	"testing"

	"ulink-doctor/internal/domain/model"
)

func TestFindPodDependency(t *testing.T) {
	raw := []byte(`
platform :ios, '13.0'

target 'Runner' do
  use_frameworks!
  pod 'Alamofire', '~> 5.6'
  pod 'ULink', '~> 1.2'
end
`)
	st := FindPodDependency(raw, "ulink")
	if st.State != model.DependencyPresent {
		t.Fatalf("state = %s, want present", st.State)
	}
	if st.Version != "~> 1.2" {
		t.Fatalf("version = %q, want ~> 1.2", st.Version)
	}
}

func TestFindPodDependency_Commented(t *testing.T) {
	raw := []byte(`
target 'Runner' do
  # pod 'ULink', '~> 1.2'
end
`)
	if st := FindPodDependency(raw, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("state = %s, want commented", st.State)
	}
}

func TestFindPodDependency_TrailingCommentIgnored(t *testing.T) {
	// 行尾注释里的 pod 声明不能被当成生效声明。
	raw := []byte(`pod 'Alamofire' # pod 'ULink'`)
	if st := FindPodDependency(raw, "ulink"); st.State == model.DependencyPresent {
		t.Fatalf("state = %s, trailing comment must not count as present", st.State)
	}
}

func TestFindSwiftPackageDependency(t *testing.T) {
	raw := []byte(`
let package = Package(
    dependencies: [
        .package(url: "https://github.com/ulink-ly/ulink-ios.git", from: "1.2.3"),
    ]
)
`)
	st := FindSwiftPackageDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "1.2.3" {
		t.Fatalf("got %+v, want present 1.2.3", st)
	}
}

func TestFindSwiftPackageDependency_Commented(t *testing.T) {
	raw := []byte(`// .package(url: "https://github.com/ulink-ly/ulink-ios.git", from: "1.2.3"),`)
	if st := FindSwiftPackageDependency(raw, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("state = %s, want commented", st.State)
	}
}

func TestFindSwiftPackageDependency_UpToNext(t *testing.T) {
	raw := []byte(`.package(url: "https://github.com/ulink-ly/ulink-ios.git", .upToNextMajor(from: "2.0.0")),`)
	st := FindSwiftPackageDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "2.0.0" {
		t.Fatalf("got %+v, want present 2.0.0", st)
	}
}
