// features.go - Build-time feature listing for TidyText

package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/intuitionamiga/TidyText/tileset"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version = "dev"

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func featureList() []string {
	features := append([]string(nil), compiledFeatures...)
	for _, name := range tileset.Names() {
		features = append(features, "font:"+name)
	}
	sort.Strings(features)
	return features
}

func printFeatures() {
	fmt.Printf("TidyText %s\n", Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Compiled features:")

	features := featureList()
	for _, f := range features {
		fmt.Printf("  %s\n", f)
	}
	if len(features) == 0 {
		fmt.Println("  (none)")
	}
}

// hasFeature reports whether a feature with the given prefix was compiled in.
func hasFeature(prefix string) bool {
	for _, f := range compiledFeatures {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}
