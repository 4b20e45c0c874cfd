package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/minired/internal/client/client"
	"github.com/dmitrijs2005/minired/internal/client/models"
	"github.com/dmitrijs2005/minired/internal/client/session"
	"github.com/dmitrijs2005/minired/internal/client/ui"
)

// Profile shows the current user and their posts.
func (a *App) Profile(ctx context.Context) error {
	u := a.sess.Snapshot().User
	if u == nil {
		return session.ErrNotAuthenticated
	}
	posts, err := a.posts.MyPosts(ctx, u.ID)
	if err != nil {
		return err
	}
	a.println(ui.Profile(u, posts))
	return nil
}

func (a *App) Bio(ctx context.Context) error {
	bio, err := getText(a.rl, "New bio")
	if err != nil {
		return err
	}
	if err := a.sess.UpdateProfile(ctx, &bio, nil); err != nil {
		return err
	}
	a.println(ui.Success("Profile updated."))
	return nil
}

// Avatar uploads an image file as the profile picture.
func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	pic, err := models.AvatarFromFile(args[0])
	if err != nil {
		return err
	}
	if err := a.sess.UpdateProfile(ctx, nil, &pic); err != nil {
		return err
	}
	a.println(ui.Success("Avatar updated."))
	return nil
}

// Whoami prints the cached identity without calling the backend.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sess.Snapshot().User
	if u == nil {
		return session.ErrNotAuthenticated
	}
	line := fmt.Sprintf("%s <%s> (id %d)", u.DisplayName(), u.Email, u.ID)
	if exp, ok := client.TokenExpiry(a.token()); ok {
		line += fmt.Sprintf(", token expires %s", exp.Local().Format(time.RFC1123))
	}
	a.println(line)
	return nil
}

// Refresh re-validates the session with the backend.
func (a *App) Refresh(ctx context.Context) error {
	u, err := a.sess.Verify(ctx)
	if err != nil {
		return err
	}
	a.println(ui.Success("Session is valid for " + u.DisplayName() + "."))
	return nil
}
