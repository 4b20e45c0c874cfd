package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/minired/internal/client/services"
	"github.com/dmitrijs2005/minired/internal/client/ui"
)

var errUsage = errors.New("usage")

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

// Feed shows one page of the feed; the optional argument is the page number.
func (a *App) Feed(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil || p < 1 {
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = p
	}

	p, err := a.posts.Feed(ctx, page, services.DefaultPerPage)
	if err != nil {
		return err
	}
	a.println(ui.Feed(p))
	return nil
}

func (a *App) Post(ctx context.Context) error {
	content, err := getMultiline(a.rl, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	image, err := getText(a.rl, "Image URL (optional)")
	if err != nil {
		return err
	}

	p, err := a.posts.Create(ctx, content, image)
	if err != nil {
		return err
	}
	a.println(ui.Success("Post published."))
	a.println(ui.Post(*p))
	return nil
}

func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.rl, fmt.Sprintf("New content for #%d", id), a.out)
	if err != nil {
		return err
	}
	answer, err := getText(a.rl, "Image URL (blank keeps it, - removes it)")
	if err != nil {
		return err
	}

	p, err := a.posts.Edit(ctx, id, content, editedImage(answer))
	if err != nil {
		return err
	}
	a.println(ui.Success("Post updated."))
	a.println(ui.Post(*p))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	ok, err := Confirm(a.rl, fmt.Sprintf("Delete post #%d?", id))
	if err != nil {
		return err
	}
	if !ok {
		return errCanceled
	}

	if err := a.posts.Delete(ctx, id); err != nil {
		return err
	}
	a.println(ui.Success("Post deleted."))
	return nil
}

func (a *App) Like(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	r, err := a.posts.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	verb := "Unliked"
	if r.IsLiked {
		verb = "Liked"
	}
	a.println(ui.Success(fmt.Sprintf("%s #%d (♥ %d)", verb, id, r.LikesCount)))
	return nil
}

func (a *App) Comments(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	cs, err := a.posts.Comments(ctx, id)
	if err != nil {
		return err
	}
	a.println(ui.Comments(id, cs))
	return nil
}

func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	content, err := getText(a.rl, "Comment")
	if err != nil {
		return err
	}
	if _, err := a.posts.AddComment(ctx, id, content); err != nil {
		return err
	}
	a.println(ui.Success("Comment added."))
	return nil
}

// editedImage maps the edit prompt answer to the image change it asks for.
func editedImage(answer string) *string {
	answer = strings.TrimSpace(answer)
	switch answer {
	case "":
		return nil
	case "-":
		removed := ""
		return &removed
	}
	return &answer
}
