package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avetins/sessionkeeper/internal/client/api"
	"github.com/avetins/sessionkeeper/internal/client/models"
)

func threePageListing() map[int]*api.UserPage {
	return map[int]*api.UserPage{
		1: pageOf(1, 5, 12,
			models.User{ID: 1, Email: "george.bluth@reqres.in"},
			models.User{ID: 2, Email: "janet.weaver@reqres.in"},
			models.User{ID: 3, Email: "emma.wong@reqres.in"},
			models.User{ID: 4, Email: "eve.holt@reqres.in"},
			models.User{ID: 5, Email: "charles.morris@reqres.in"},
		),
		2: pageOf(2, 5, 12,
			models.User{ID: 6, Email: "tracey.ramos@reqres.in"},
			models.User{ID: 7, Email: "michael.lawson@reqres.in"},
			models.User{ID: 8, Email: "lindsay.ferguson@reqres.in"},
			models.User{ID: 9, Email: "tobias.funke@reqres.in"},
			models.User{ID: 10, Email: "byron.fields@reqres.in"},
		),
		3: pageOf(3, 5, 12,
			models.User{ID: 11, Email: "george.edwards@reqres.in"},
			models.User{ID: 12, Email: "rachel.howell@reqres.in"},
		),
	}
}

func TestListScanResolver_FindsUserOnLaterPage(t *testing.T) {
	fc := &fakeClient{Pages: threePageListing()}
	r := NewListScanResolver(fc, 5)

	u, err := r.Resolve(context.Background(), "tobias.funke@reqres.in")
	require.NoError(t, err)
	require.Equal(t, int64(9), u.ID)
	require.Equal(t, []int{1, 2}, fc.ListCalls, "scan must stop at the matching page")
}

func TestListScanResolver_ExhaustsListing(t *testing.T) {
	fc := &fakeClient{Pages: threePageListing()}
	r := NewListScanResolver(fc, 5)

	_, err := r.Resolve(context.Background(), "ghost@reqres.in")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Equal(t, []int{1, 2, 3}, fc.ListCalls)
}

func TestListScanResolver_MatchIsCaseSensitive(t *testing.T) {
	fc := &fakeClient{Pages: threePageListing()}
	r := NewListScanResolver(fc, 5)

	_, err := r.Resolve(context.Background(), "Eve.Holt@reqres.in")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListScanResolver_ListingErrorPropagates(t *testing.T) {
	fc := &fakeClient{ListErr: errors.New("boom")}
	r := NewListScanResolver(fc, 5)

	_, err := r.Resolve(context.Background(), "eve.holt@reqres.in")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUserNotFound)
}

func TestListScanResolver_EmptyListing(t *testing.T) {
	fc := &fakeClient{}
	r := NewListScanResolver(fc, 5)

	_, err := r.Resolve(context.Background(), "eve.holt@reqres.in")
	require.ErrorIs(t, err, ErrUserNotFound)
	require.Equal(t, []int{1}, fc.ListCalls, "an empty first page must end the scan")
}
