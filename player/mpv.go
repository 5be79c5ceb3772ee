package player

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/cbstream/cbstream/log"
)

// MPV implements the Player interface by running the mpv executable.
type MPV struct {
	// Path of the executable, "mpv" by default.
	Path string
	// Detach starts mpv in its own process group and returns without waiting.
	Detach bool
}

func NewMPV() *MPV {
	return &MPV{Path: "mpv"}
}

func (m *MPV) Binary() string {
	return m.Path
}

// Args builds the mpv command line for a stream.
func (m *MPV) Args(rawURL, title string, headers map[string]string) ([]string, error) {
	// Sanitize the URL to prevent flag injection
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	safeTitle := sanitizeTitle(title)

	// Pass only the title, headers and URL so the user's mpv.conf stays in charge.
	args := []string{
		fmt.Sprintf("--force-media-title=%s", safeTitle),
		fmt.Sprintf("--title=%s", safeTitle), // Some mpv builds only respect --title
	}

	if len(headers) > 0 {
		args = append(args, fmt.Sprintf("--http-header-fields=%s", headerFields(headers)))
	}

	return append(args, "--", safeURL), nil
}

// Play runs mpv for the stream. Unless Detach is set it blocks until mpv exits or
// ctx is cancelled.
func (m *MPV) Play(ctx context.Context, rawURL string, title string, headers map[string]string) error {
	args, err := m.Args(rawURL, title, headers)
	if err != nil {
		return err
	}

	if m.Detach {
		cmd := exec.Command(m.Path, append([]string{"--no-terminal", "--really-quiet"}, args...)...)
		// Detach from parent process group to prevent cascading shell panics.
		cmd.SysProcAttr = sysProcAttr()

		if err := cmd.Start(); err != nil {
			return fmt.Errorf("start mpv: %w", err)
		}
		log.Infof("mpv started with pid %d", cmd.Process.Pid)

		// reap the process to prevent zombies
		go func() {
			_ = cmd.Wait()
		}()
		return nil
	}

	// mpv stays in the foreground process group so it keeps terminal input
	cmd := exec.CommandContext(ctx, m.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Infof("running mpv for %s", safeForLog(rawURL))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mpv: %w", err)
	}
	return nil
}

// sanitizeMediaTarget validates that a URL is safe to pass to a player.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	// Reject control characters
	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// Prevent flag injection: URLs must not start with -
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

// sanitizeTitle cleans up the title for the player window
func sanitizeTitle(title string) string {
	t := strings.ReplaceAll(title, "\n", " ")
	t = strings.ReplaceAll(t, "\r", " ")
	t = strings.ReplaceAll(t, "\t", " ")
	// Remove null bytes
	t = strings.ReplaceAll(t, "\x00", "")
	return strings.TrimSpace(t)
}

// safeForLog drops the query string, which may carry session tokens.
func safeForLog(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}
