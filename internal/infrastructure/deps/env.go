package deps

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// CommandEnvWithPrefix returns the process environment with prefix's
// pkgconfig and lib directories searched ahead of the system ones. Overrides
// are appended; exec keeps the last value for a repeated key.
func CommandEnvWithPrefix(prefix string) []string {
	env := os.Environ()
	if strings.TrimSpace(prefix) == "" {
		return env
	}

	libs, pcs := prefixDirs(filepath.Clean(prefix))
	return append(env,
		"PKG_CONFIG_PATH="+prependPathList(os.Getenv("PKG_CONFIG_PATH"), pcs...),
		"LD_LIBRARY_PATH="+prependPathList(os.Getenv("LD_LIBRARY_PATH"), libs...),
	)
}

// prefixDirs lists the library directories and .pc directories a GTK build
// installed under root may use.
func prefixDirs(root string) (libs, pcs []string) {
	for _, lib := range []string{"lib", "lib64", filepath.Join("lib", "x86_64-linux-gnu")} {
		dir := filepath.Join(root, lib)
		libs = append(libs, dir)
		pcs = append(pcs, filepath.Join(dir, "pkgconfig"))
	}
	pcs = append(pcs, filepath.Join(root, "share", "pkgconfig"))
	return libs, pcs
}

// prependPathList returns first followed by the entries of the colon list
// existing, skipping blanks and repeats.
func prependPathList(existing string, first ...string) string {
	var out []string
	for _, p := range slices.Concat(first, strings.Split(existing, ":")) {
		p = strings.TrimSpace(p)
		if p != "" && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return strings.Join(out, ":")
}
