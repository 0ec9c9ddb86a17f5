package main

import (
	"context"
	"flag"
	"fmt"

	"ulink-doctor/internal/adapters/project"
	"ulink-doctor/internal/domain/model"
)

// runTargets 列出工程内发现的全部 iOS target（entitlements + Info.plist 配对）。
// 常用于多 target 工程确认该给 verify 传哪个 --bundle-id。
func runTargets(ctx context.Context, args []string) error {
	_ = ctx

	fs := flag.NewFlagSet("targets", flag.ContinueOnError)
	projectDir := fs.String("project", ".", "project root directory")
	bundleID := fs.String("bundle-id", "", "bundle id to match against (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind := project.Classify(*projectDir)
	if kind == model.KindUnknown {
		return fmt.Errorf("unrecognized project type at %s", *projectDir)
	}
	if kind == model.KindAndroid {
		return fmt.Errorf("target discovery applies to iOS and Flutter projects only (found %s)", kind)
	}

	res := project.Discover(*projectDir, kind, *bundleID)
	if len(res.AllTargets) == 0 {
		fmt.Println("no targets discovered (no entitlements files found)")
		return nil
	}

	fmt.Printf("discovered targets (%d):\n", len(res.AllTargets))
	for _, t := range res.AllTargets {
		marker := " "
		if res.Matched != nil && res.Matched.EntitlementsPath == t.EntitlementsPath {
			marker = "*"
		}
		fmt.Printf("%s %s bundle_id=%s\n", marker, t.Name, t.BundleID)
		fmt.Printf("    entitlements=%s\n", t.EntitlementsPath)
		fmt.Printf("    info_plist=%s\n", t.InfoPlistPath)
	}

	if *bundleID != "" && !res.HasMatch() {
		return fmt.Errorf("no target matches bundle id %q", *bundleID)
	}
	return nil
}
