package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/desklet/internal/application/port"
	"github.com/bnema/desklet/internal/application/usecase"
	"github.com/bnema/desklet/internal/domain/entity"
)

// StatusRenderer renders controller command results.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// RenderInstance renders the output of `desklet status`.
func (r *StatusRenderer) RenderInstance(st *port.InstanceStatus) string {
	var sb strings.Builder
	if st.Running {
		sb.WriteString(fmt.Sprintf("\n  %s desklet %s %s\n",
			r.theme.SuccessStyle.Render(IconPlay),
			r.theme.StatusBadge("running", r.theme.Background, r.theme.Success),
			r.theme.Subtle.Render(fmt.Sprintf("pid %d", st.PID)),
		))
	} else {
		sb.WriteString(fmt.Sprintf("\n  %s desklet %s\n",
			r.theme.Subtle.Render(IconStop),
			r.theme.MutedBadge("stopped"),
		))
	}
	if st.StaleRemoved {
		sb.WriteString(fmt.Sprintf("  %s removed stale lock left by pid %d\n",
			r.theme.WarningStyle.Render(IconWarning), st.PID))
	}
	sb.WriteString(fmt.Sprintf("  %s %s\n", r.theme.Subtle.Render(IconLock), r.theme.Subtle.Render(st.LockPath)))
	return sb.String()
}

// RenderStopped renders a successful `desklet stop`.
func (r *StatusRenderer) RenderStopped(wasRunning bool, pid int) string {
	if !wasRunning {
		return r.RenderInfo("desklet is not running")
	}
	return r.RenderSuccess(fmt.Sprintf("stopped desklet (pid %d)", pid))
}

// RenderStopTimeout renders the operator warning when the overlay survives.
func (r *StatusRenderer) RenderStopTimeout(pid int, timeout time.Duration) string {
	return fmt.Sprintf("\n  %s desklet (pid %d) did not exit within %s\n  %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		pid,
		timeout,
		r.theme.Subtle.Render("The lock is re-checked for staleness on the next start."),
	)
}

// RenderAutostart renders the autostart entry state.
func (r *StatusRenderer) RenderAutostart(st *port.AutostartStatus) string {
	state := r.theme.MutedBadge("disabled")
	if st.Installed {
		state = r.theme.AccentBadge("enabled")
	}
	out := fmt.Sprintf("\n  %s autostart %s\n  %s %s\n",
		r.theme.Highlight.Render(IconDesktop),
		state,
		r.theme.Subtle.Render(IconCursor),
		r.theme.Subtle.Render(st.EntryPath),
	)
	if st.Exec != "" {
		out += fmt.Sprintf("  %s %s\n", r.theme.Subtle.Render(IconCursor), r.theme.Normal.Render(st.Exec))
	}
	return out
}

// RenderSettings renders the overlay settings as an aligned table.
func (r *StatusRenderer) RenderSettings(s *entity.Settings, path string) string {
	gif := s.GIFPath
	if gif == "" {
		gif = r.theme.WarningStyle.Render("(not set)")
	}
	rows := [][2]string{
		{"gif_path", gif},
		{"monitor", fmt.Sprintf("%d", s.Monitor)},
		{"position", string(s.Position)},
		{"margin", fmt.Sprintf("%d", s.Margin)},
		{"autostart", fmt.Sprintf("%t", s.Autostart)},
		{"custom_x", s.CustomX},
		{"custom_y", s.CustomY},
	}

	keyStyle := r.theme.Highlight.Width(10)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n\n", r.theme.Highlight.Render(IconConfig), r.theme.Subtle.Render(path)))
	for _, row := range rows {
		sb.WriteString("    " + lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(row[0]), r.theme.Normal.Render(row[1])) + "\n")
	}
	return sb.String()
}

// RenderSuccess renders a one-line success message.
func (r *StatusRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderInfo renders a one-line informational message.
func (r *StatusRenderer) RenderInfo(msg string) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.Highlight.Render(IconInfo), msg)
}

// RenderError renders a one-line error message.
func (r *StatusRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n", r.theme.ErrorStyle.Render(IconX), err)
}

// RenderKeys renders the settable configuration keys grouped by section.
func (r *StatusRenderer) RenderKeys(keys []entity.ConfigKeyInfo) string {
	var sb strings.Builder
	section := ""
	keyStyle := r.theme.Highlight.Width(26)
	for _, k := range keys {
		if k.Section != section {
			section = k.Section
			sb.WriteString(fmt.Sprintf("\n  %s\n", r.theme.Title.Render(section)))
		}
		detail := k.Type
		switch {
		case len(k.Values) > 0:
			detail = strings.Join(k.Values, " | ")
		case k.Range != "":
			detail = fmt.Sprintf("%s %s", k.Type, k.Range)
		}
		sb.WriteString(fmt.Sprintf("    %s%s %s\n      %s\n",
			keyStyle.Render(k.Key),
			r.theme.Normal.Render(detail),
			r.theme.Subtle.Render("(default "+k.Default+")"),
			r.theme.Subtle.Render(k.Description),
		))
	}
	return sb.String()
}

// RenderDoctor renders the runtime library check.
func (r *StatusRenderer) RenderDoctor(out *usecase.CheckRuntimeDependenciesOutput) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Runtime libraries", r.theme.Highlight.Render(IconDesktop)))
	if out.Prefix != "" {
		sb.WriteString(" " + r.theme.Subtle.Render(out.Prefix))
	}
	sb.WriteString("\n\n")

	nameStyle := r.theme.Normal.Width(12)
	for _, c := range out.Checks {
		icon := r.theme.SuccessStyle.Render(IconCheck)
		detail := c.Version
		switch {
		case !c.Installed:
			icon = r.theme.ErrorStyle.Render(IconX)
			detail = r.theme.ErrorStyle.Render("not found")
		case c.Error != "":
			icon = r.theme.WarningStyle.Render(IconWarning)
			detail = fmt.Sprintf("%s %s", c.Version, r.theme.WarningStyle.Render(c.Error))
		case !c.MeetsRequirement:
			icon = r.theme.WarningStyle.Render(IconWarning)
			detail = fmt.Sprintf("%s %s", c.Version, r.theme.WarningStyle.Render("needs "+c.RequiredVersion))
		}
		sb.WriteString(fmt.Sprintf("    %s %s%s\n", icon, nameStyle.Render(c.DisplayName), detail))
	}
	return sb.String()
}
