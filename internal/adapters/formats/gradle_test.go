package formats

import (
	"testing"

	"ulink-doctor/internal/domain/model"
)

func TestFindGradleDependency_Coordinate(t *testing.T) {
	raw := []byte(`
dependencies {
    implementation 'androidx.core:core-ktx:1.9.0'
    implementation 'ly.ulink:ulink-sdk:1.2.3'
}
`)
	st := FindGradleDependency(raw, "ulink")
	if st.State != model.DependencyPresent {
		t.Fatalf("state = %s, want present", st.State)
	}
	if st.Version != "1.2.3" {
		t.Fatalf("version = %q, want 1.2.3", st.Version)
	}
}

func TestFindGradleDependency_KotlinDSL(t *testing.T) {
	raw := []byte(`dependencies { implementation("ly.ulink:ulink-sdk:2.0.0") }`)
	st := FindGradleDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "2.0.0" {
		t.Fatalf("got %+v, want present 2.0.0", st)
	}
}

func TestFindGradleDependency_MapForm(t *testing.T) {
	raw := []byte(`implementation group: 'ly.ulink', name: 'ulink-sdk', version: '3.1.0'`)
	st := FindGradleDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "3.1.0" {
		t.Fatalf("got %+v, want present 3.1.0", st)
	}
}

func TestFindGradleDependency_Commented(t *testing.T) {
	lineComment := []byte(`
dependencies {
    // implementation 'ly.ulink:ulink-sdk:1.2.3'
}
`)
	if st := FindGradleDependency(lineComment, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("line comment: state = %s, want commented", st.State)
	}

	blockComment := []byte(`
dependencies {
    /*
    implementation 'ly.ulink:ulink-sdk:1.2.3'
    */
}
`)
	if st := FindGradleDependency(blockComment, "ulink"); st.State != model.DependencyCommented {
		t.Fatalf("block comment: state = %s, want commented", st.State)
	}
}

func TestFindGradleDependency_ActiveWinsOverCommented(t *testing.T) {
	// 同一文件里既有注释掉的又有生效的声明时，按 present 报告。
	raw := []byte(`
// implementation 'ly.ulink:ulink-sdk:0.9.0'
implementation 'ly.ulink:ulink-sdk:1.0.0'
`)
	st := FindGradleDependency(raw, "ulink")
	if st.State != model.DependencyPresent || st.Version != "1.0.0" {
		t.Fatalf("got %+v, want present 1.0.0", st)
	}
}

func TestFindGradleDependency_Absent(t *testing.T) {
	raw := []byte(`implementation 'androidx.core:core-ktx:1.9.0'`)
	if st := FindGradleDependency(raw, "ulink"); st.State != model.DependencyAbsent {
		t.Fatalf("state = %s, want absent", st.State)
	}
}

func TestGradleApplicationID(t *testing.T) {
	groovy := []byte(`
android {
    defaultConfig {
        applicationId "ly.ulink.demo"
    }
}
`)
	if got := GradleApplicationID(groovy); got != "ly.ulink.demo" {
		t.Fatalf("groovy applicationId = %q, want ly.ulink.demo", got)
	}

	kts := []byte(`applicationId = "ly.ulink.kts"`)
	if got := GradleApplicationID(kts); got != "ly.ulink.kts" {
		t.Fatalf("kts applicationId = %q, want ly.ulink.kts", got)
	}

	commented := []byte(`// applicationId "ly.ulink.dead"`)
	if got := GradleApplicationID(commented); got != "" {
		t.Fatalf("commented applicationId = %q, want empty", got)
	}
}
