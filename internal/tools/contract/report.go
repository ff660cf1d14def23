package contract

import (
	"fmt"
	"strings"
)

// report is the Markdown envelope every tool wraps its output in. The code
// itself is the contract; the surrounding commentary is documentation for
// the calling agent and is free to evolve.
type report struct {
	Title    string
	Intro    string
	Params   [][2]string
	Code     string
	CodeLang string
	// CodeTitle overrides the heading above the fenced block.
	CodeTitle string
	Notes     []string
	Warnings  []string
}

func (r report) render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	if r.Intro != "" {
		b.WriteString(r.Intro)
		b.WriteString("\n\n")
	}

	if len(r.Params) > 0 {
		b.WriteString("**Parameters**\n\n")
		for _, p := range r.Params {
			fmt.Fprintf(&b, "- **%s**: %s\n", p[0], p[1])
		}
		b.WriteString("\n")
	}

	if r.Code != "" {
		lang := r.CodeLang
		if lang == "" {
			lang = "python"
		}
		heading := r.CodeTitle
		if heading == "" {
			heading = "Generated Code"
		}
		fmt.Fprintf(&b, "## %s\n\n```%s\n%s\n```\n\n", heading, lang, strings.TrimRight(r.Code, "\n"))
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Security Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- ⚠️ %s\n", w)
		}
		b.WriteString("\n")
	}

	if len(r.Notes) > 0 {
		b.WriteString("## Next Steps\n\n")
		for _, n := range r.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
