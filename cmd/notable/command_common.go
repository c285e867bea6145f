package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"notable/internal/types"
)

const version = "dev"

func printNotes(output io.Writer, notes []types.Note) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tUPDATED")
	for _, note := range notes {
		stamp := note.ActivityStamp()
		if stamp == "" {
			stamp = "-"
		}
		title := note.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", note.ID, title, stamp)
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
	}
	return version
}
