package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/dmitrijs2005/minired/internal/timex"
)

const dateLayout = "2006-01-02 15:04"

// now is a test seam.
var now = time.Now

// Post renders a post card.
func Post(p models.Post) string {
	head := fmt.Sprintf("%s %s  %s",
		AuthorStyle.Render("@"+p.Author.Username),
		MutedStyle.Render(fmt.Sprintf("#%d", p.ID)),
		MutedStyle.Render(Ago(p.CreatedAt)),
	)

	lines := []string{head, "", p.Content}
	if p.Image != "" {
		lines = append(lines, MutedStyle.Render("[image] "+preview(p.Image)))
	}
	lines = append(lines, "", MutedStyle.Render(fmt.Sprintf("♥ %d   💬 %d", p.LikesCount, p.CommentsCount)))

	return CardStyle.Render(strings.Join(lines, "\n"))
}

// Feed renders a page of posts with a pager line.
func Feed(page *models.PostPage) string {
	if page == nil || len(page.Posts) == 0 {
		return MutedStyle.Render("No posts yet.")
	}
	cards := make([]string, 0, len(page.Posts)+1)
	for _, p := range page.Posts {
		cards = append(cards, Post(p))
	}
	cards = append(cards, MutedStyle.Render(fmt.Sprintf("page %d of %d, %d posts", page.CurrentPage, page.Pages, page.Total)))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Comments renders the comment list of a post.
func Comments(postID int64, comments []models.Comment) string {
	title := HeaderStyle.Render(fmt.Sprintf("Comments on #%d", postID))
	if len(comments) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, MutedStyle.Render("No comments yet."))
	}
	rows := []string{title}
	for _, c := range comments {
		rows = append(rows, CommentStyle.Render(
			AuthorStyle.Render("@"+c.User.Username)+" "+MutedStyle.Render(Ago(c.CreatedAt))+"\n"+c.Content,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Profile renders a user card followed by the user's posts.
func Profile(u *models.User, posts []models.Post) string {
	if u == nil {
		return MutedStyle.Render("Not logged in.")
	}

	bio := u.Bio
	if bio == "" {
		bio = MutedStyle.Render("no bio yet")
	}
	pic := MutedStyle.Render("default")
	if u.ProfilePic != "" {
		pic = preview(u.ProfilePic)
	}

	info := []string{
		row("user", u.DisplayName()),
		row("email", u.Email),
		row("bio", bio),
		row("avatar", pic),
	}
	if !u.CreatedAt.IsZero() {
		info = append(info, row("joined", u.CreatedAt.Local().Format(dateLayout)))
	}
	info = append(info, row("posts", fmt.Sprintf("%d", len(posts))))

	parts := []string{CardStyle.Render(strings.Join(info, "\n"))}
	for _, p := range posts {
		parts = append(parts, Post(p))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func Error(msg string) string {
	return ErrorTextStyle.Render("✗ " + msg)
}

func Success(msg string) string {
	return SuccessTextStyle.Render("✓ " + msg)
}

func Header(msg string) string {
	return HeaderStyle.Render(msg)
}

// Ago formats t relative to now, falling back to the date after a week.
func Ago(t timex.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now().Sub(t.Time)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format(dateLayout)
	}
}

func row(key, value string) string {
	return InfoKeyStyle.Render(key) + InfoValueStyle.Render(value)
}

// preview shortens long values such as data: URLs.
func preview(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.IndexByte(s, ','); i > 0 {
			return s[:i] + fmt.Sprintf(",… (%d bytes)", len(s)-i-1)
		}
	}
	const maxLen = 48
	if len([]rune(s)) > maxLen {
		return string([]rune(s)[:maxLen-1]) + "…"
	}
	return s
}
