package service

import (
	"center_backend/internal/repository"
	"center_backend/internal/testutil"
	"center_backend/internal/util"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLotteryService(t *testing.T, users int) *LotteryService {
	t.Helper()
	db := testutil.NewDB(t)
	for i := 1; i <= users; i++ {
		role := "二组"
		if i%2 == 1 {
			role = "一组"
		}
		testutil.SeedUser(t, db, fmt.Sprintf("u%02d", i), fmt.Sprintf("同学%d", i), role)
	}
	return NewLotteryService(repository.NewUserRepository(db), repository.NewRoleRepository(db), "全体")
}

func TestLotteryService_ListRoles(t *testing.T) {
	svc := newLotteryService(t, 4)

	options, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Option{
		{Label: "全体", Value: "全体"},
		{Label: "一组", Value: "一组"},
		{Label: "二组", Value: "二组"},
	}, options)
}

func TestLotteryService_DrawDistinct(t *testing.T) {
	svc := newLotteryService(t, 10)
	ctx := context.Background()

	for _, n := range []int{1, 3, 10} {
		drawn, err := svc.Draw(ctx, "全体", n)
		require.NoError(t, err)
		assert.Len(t, drawn, n)

		seen := map[string]bool{}
		for _, m := range drawn {
			assert.False(t, seen[m.UID], "duplicate %s", m.UID)
			seen[m.UID] = true
		}
	}
}

func TestLotteryService_DrawWholeGroupWhenCountExceedsSize(t *testing.T) {
	svc := newLotteryService(t, 10)
	ctx := context.Background()

	drawn, err := svc.Draw(ctx, "一组", 50)
	require.NoError(t, err)
	uids := make([]string, 0, len(drawn))
	for _, m := range drawn {
		uids = append(uids, m.UID)
	}
	assert.ElementsMatch(t, []string{"u01", "u03", "u05", "u07", "u09"}, uids)
}

func TestLotteryService_DrawEdgeCases(t *testing.T) {
	svc := newLotteryService(t, 3)
	ctx := context.Background()

	drawn, err := svc.Draw(ctx, "全体", 0)
	require.NoError(t, err)
	assert.Len(t, drawn, 1)

	drawn, err = svc.Draw(ctx, "全体", -3)
	require.NoError(t, err)
	assert.Len(t, drawn, 1)

	_, err = svc.Draw(ctx, "", 1)
	assert.ErrorIs(t, err, util.ErrIncompleteData)

	_, err = svc.Draw(ctx, "不存在", 1)
	assert.ErrorIs(t, err, util.ErrRoleNotFound)

	svc.SetEveryoneLabel("所有人")
	drawn, err = svc.Draw(ctx, "所有人", 5)
	require.NoError(t, err)
	assert.Len(t, drawn, 3)
}

func TestLotteryService_DrawEveryoneOnEmptyRoster(t *testing.T) {
	svc := newLotteryService(t, 0)

	drawn, err := svc.Draw(context.Background(), "全体", 3)
	require.NoError(t, err)
	assert.NotNil(t, drawn)
	assert.Empty(t, drawn)
}
