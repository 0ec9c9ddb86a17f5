package project

import (
	"fmt"
	"testing"

	"ulink-doctor/internal/domain/model"
)

func plistWithBundleID(id string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
</dict>
</plist>`, id)
}

func TestDiscover_FirstTargetWinsWithoutRequest(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "App/App.entitlements", "<plist/>")
	writeFixture(t, root, "App/Info.plist", plistWithBundleID("ly.ulink.app"))
	writeFixture(t, root, "Widget/Widget.entitlements", "<plist/>")
	writeFixture(t, root, "Widget/Info.plist", plistWithBundleID("ly.ulink.widget"))

	res := Discover(root, model.KindIOS, "")
	if len(res.AllTargets) != 2 {
		t.Fatalf("targets = %d, want 2", len(res.AllTargets))
	}
	if !res.HasMatch() {
		t.Fatalf("expected a match")
	}
	// 无请求时首个目标命中，且不被后续目标覆盖。
	if res.Matched.BundleID != res.AllTargets[0].BundleID {
		t.Fatalf("matched = %q, want first target %q", res.Matched.BundleID, res.AllTargets[0].BundleID)
	}
}

func TestDiscover_RequestedBundleID(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "App/App.entitlements", "<plist/>")
	writeFixture(t, root, "App/Info.plist", plistWithBundleID("ly.ulink.app"))
	writeFixture(t, root, "Widget/Widget.entitlements", "<plist/>")
	writeFixture(t, root, "Widget/Info.plist", plistWithBundleID("ly.ulink.widget"))

	res := Discover(root, model.KindIOS, "ly.ulink.widget")
	if !res.HasMatch() {
		t.Fatalf("expected a match for ly.ulink.widget")
	}
	if res.Matched.BundleID != "ly.ulink.widget" {
		t.Fatalf("matched = %q, want ly.ulink.widget", res.Matched.BundleID)
	}
	// 命中后仍要收齐全部目标。
	if len(res.AllTargets) != 2 {
		t.Fatalf("targets = %d, want 2", len(res.AllTargets))
	}
	if !res.HasMultipleTargets() {
		t.Fatalf("expected HasMultipleTargets")
	}
}

func TestDiscover_BundleIDCaseSensitive(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "App/App.entitlements", "<plist/>")
	writeFixture(t, root, "App/Info.plist", plistWithBundleID("ly.ulink.app"))

	res := Discover(root, model.KindIOS, "LY.ULINK.APP")
	if res.HasMatch() {
		t.Fatalf("bundle id match must be case sensitive, matched %q", res.Matched.BundleID)
	}
	if len(res.AllTargets) != 1 {
		t.Fatalf("targets = %d, want 1", len(res.AllTargets))
	}
}

func TestDiscover_UnpairedEntitlementsSkipped(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "Orphan/Orphan.entitlements", "<plist/>")

	res := Discover(root, model.KindIOS, "")
	if len(res.AllTargets) != 0 {
		t.Fatalf("targets = %v, want none for unpaired entitlements", res.AllTargets)
	}
	if res.HasMatch() {
		t.Fatalf("unexpected match")
	}
}

func TestDiscover_PlistInParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "App/Entitlements/App.entitlements", "<plist/>")
	writeFixture(t, root, "App/Info.plist", plistWithBundleID("ly.ulink.parent"))

	res := Discover(root, model.KindIOS, "")
	if !res.HasMatch() {
		t.Fatalf("expected a match via parent directory pairing")
	}
	if res.Matched.BundleID != "ly.ulink.parent" {
		t.Fatalf("matched = %q, want ly.ulink.parent", res.Matched.BundleID)
	}
}

func TestDiscover_ExpandsBuildVariable(t *testing.T) {
	root := t.TempDir()
	writePbxproj(t, root, "Demo.xcodeproj", samplePbxproj)
	writeFixture(t, root, "App/App.entitlements", "<plist/>")
	writeFixture(t, root, "App/Info.plist", plistWithBundleID("$(PRODUCT_BUNDLE_IDENTIFIER)"))

	res := Discover(root, model.KindIOS, "ly.ulink.demo")
	if !res.HasMatch() {
		t.Fatalf("expected match after variable expansion")
	}
	if res.Matched.BundleID != "ly.ulink.demo" {
		t.Fatalf("matched = %q, want ly.ulink.demo", res.Matched.BundleID)
	}
}
