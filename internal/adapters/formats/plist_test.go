package formats

import (
	"testing"
)

const samplePlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>ly.ulink.demo</string>
	<key>CFBundleURLTypes</key>
	<array>
		<dict>
			<key>CFBundleURLSchemes</key>
			<array>
				<string>ulinkdemo</string>
				<string>legacy://</string>
			</array>
		</dict>
		<dict>
			<key>CFBundleURLName</key>
			<string>no schemes entry here</string>
		</dict>
		<dict>
			<key>CFBundleURLSchemes</key>
			<array>
				<string>ulinkdemo</string>
			</array>
		</dict>
	</array>
</dict>
</plist>`

func TestPlistBundleID(t *testing.T) {
	if got := PlistBundleID([]byte(samplePlist)); got != "ly.ulink.demo" {
		t.Fatalf("bundle id = %q, want ly.ulink.demo", got)
	}
}

func TestPlistURLSchemes_StripSuffixAndDedup(t *testing.T) {
	got := PlistURLSchemes([]byte(samplePlist))
	// "legacy://" 须裁掉尾部分隔符，重复的 "ulinkdemo" 只出现一次。
	want := []string{"ulinkdemo", "legacy"}
	if len(got) != len(want) {
		t.Fatalf("schemes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("schemes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPlistURLSchemes_MalformedEntrySkipped(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleURLTypes</key>
	<array>
		<string>not a dict</string>
		<dict>
			<key>CFBundleURLSchemes</key>
			<array><string>good</string></array>
		</dict>
	</array>
</dict>
</plist>`
	got := PlistURLSchemes([]byte(raw))
	if len(got) != 1 || got[0] != "good" {
		t.Fatalf("schemes = %v, want [good]", got)
	}
}

func TestParsePlistDict_Corrupt(t *testing.T) {
	if dict := ParsePlistDict([]byte("<plist><dict>unclosed")); dict != nil {
		t.Fatalf("expected nil for corrupt plist, got %v", dict)
	}
	if dict := ParsePlistDict(nil); dict != nil {
		t.Fatalf("expected nil for empty input, got %v", dict)
	}
}

func TestPlistAssociatedDomains(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>com.apple.developer.associated-domains</key>
	<array>
		<string>applinks:demo.ulink.ly</string>
		<string>APPLINKS:upper.ulink.ly</string>
		<string>applinks:dev.ulink.ly?mode=developer</string>
		<string>webcredentials:cred.ulink.ly</string>
		<string>bare.ulink.ly</string>
		<string>applinks:demo.ulink.ly</string>
	</array>
</dict>
</plist>`
	got := PlistAssociatedDomains([]byte(raw))
	want := []string{"demo.ulink.ly", "upper.ulink.ly", "dev.ulink.ly", "bare.ulink.ly"}
	if len(got) != len(want) {
		t.Fatalf("domains = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("domains[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
