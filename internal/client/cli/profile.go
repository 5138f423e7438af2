package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avetins/sessionkeeper/internal/client/api"
)

// Profile prints the signed-in user's profile. When the identity carries an
// id, a best-effort refresh from the server runs first; a refresh failure
// falls back to whatever is already cached in memory.
func (a *App) Profile(ctx context.Context) error {
	st := a.session.State()
	if !st.LoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	if st.Identity.ID != 0 {
		_ = a.session.FetchProfile(ctx, st.Identity.ID)
		st = a.session.State()
	}

	u := st.Identity
	printlnFn(fmt.Sprintf("id:         %d", u.ID))
	printlnFn(fmt.Sprintf("email:      %s", u.Email))
	printlnFn(fmt.Sprintf("first name: %s", u.FirstName))
	printlnFn(fmt.Sprintf("last name:  %s", u.LastName))
	if u.Avatar != "" {
		printlnFn(fmt.Sprintf("avatar:     %s", u.Avatar))
	}
	return nil
}

// EditProfile prompts for new profile fields and submits the update.
// An empty answer keeps the current value. On rejection the session error
// message is shown to the user.
func (a *App) EditProfile(ctx context.Context) error {
	st := a.session.State()
	if !st.LoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if st.Identity.ID == 0 {
		printlnFn("Profile is not loaded yet, try again in a moment")
		return nil
	}

	cur := st.Identity

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", cur.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", cur.LastName), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", cur.Email), os.Stdout)
	if err != nil {
		return err
	}

	upd := api.UserUpdate{FirstName: firstName, LastName: lastName, Email: email}
	if upd.FirstName == "" {
		upd.FirstName = cur.FirstName
	}
	if upd.LastName == "" {
		upd.LastName = cur.LastName
	}
	if upd.Email == "" {
		upd.Email = cur.Email
	}

	if err := a.session.UpdateProfile(ctx, cur.ID, upd); err != nil {
		printlnFn("Update failed:", a.session.State().Err)
		return err
	}

	printlnFn("Profile updated")
	return nil
}

// DeleteAccount asks for confirmation, deletes the remote account and
// logs out. Anything but an exact "yes" aborts.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Delete the account and all session data? Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		printlnFn("Aborted")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		printlnFn("Delete failed:", err.Error())
		return err
	}

	printlnFn("Account deleted")
	return nil
}
