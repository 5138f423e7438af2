package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avetins/sessionkeeper/internal/client/services"
)

// Users pages through the user listing, printing newly arrived records
// after each fetch. The pager lives only for this command invocation, so
// every run starts from the first page.
func (a *App) Users(ctx context.Context) error {
	pager := services.NewUserListPager(a.client, a.log, a.config.PageSize)

	for {
		shown := len(pager.Users())
		if err := pager.LoadMore(ctx); err != nil {
			printlnFn("Failed to load users:", err.Error())
			return err
		}

		users := pager.Users()
		for _, u := range users[shown:] {
			printlnFn(fmt.Sprintf("%4d  %-32s %s %s", u.ID, u.Email, u.FirstName, u.LastName))
		}

		if !pager.HasMore() {
			printlnFn(fmt.Sprintf("All %d users shown", pager.Total()))
			return nil
		}

		answer, err := getSimpleText(a.reader, "Enter for more, q to stop", os.Stdout)
		if err != nil || answer == "q" {
			return nil
		}
	}
}
