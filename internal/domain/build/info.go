// Package build describes the binary being run.
package build

const repoURL = "https://github.com/bnema/desklet"

// Info holds values stamped in at link time. Unset fields read "unknown".
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Field is one labelled line of `desklet version` output.
type Field struct {
	Label string
	Value string
}

// Fields lists everything `desklet version` prints below the version badge.
func (i Info) Fields() []Field {
	return []Field{
		{"commit", orUnknown(i.Commit)},
		{"built", orUnknown(i.BuildDate)},
		{"go", orUnknown(i.GoVersion)},
		{"repo", repoURL},
	}
}

// IsDev reports whether the binary was built without release ldflags.
func (i Info) IsDev() bool {
	return i.Version == "" || i.Version == "dev"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
