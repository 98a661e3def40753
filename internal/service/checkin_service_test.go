package service

import (
	"center_backend/internal/repository"
	"center_backend/internal/testutil"
	"center_backend/internal/util"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func newCheckinService(t *testing.T) *CheckinService {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.SeedAdmin(t, db, "t1", "李老师", "管理员", "")
	testutil.SeedUser(t, db, "u1", "张三")
	testutil.SeedUser(t, db, "u2", "李四")
	return NewCheckinService(repository.NewCheckinRepository(db), repository.NewUserRepository(db), true)
}

func TestCheckinService_SubmitOnceThenRejected(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "周一点名", 10, "t1")
	require.NoError(t, err)

	loc := Location{Lng: f64(121.4), Lat: f64(31.2), Address: "教学楼"}
	require.NoError(t, svc.Submit(ctx, task.TaskID, "u1", loc))
	assert.ErrorIs(t, svc.Submit(ctx, task.TaskID, "u1", loc), util.ErrAlreadyCheckedIn)

	records, err := svc.Records(ctx, task.TaskID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "u1", records[0].UID)
	assert.Equal(t, "位置：教学楼", records[0].Note)
	assert.InDelta(t, 31.2, *records[0].Latitude, 1e-9)
	assert.InDelta(t, 121.4, *records[0].Longitude, 1e-9)
}

func TestCheckinService_SubmitValidation(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()
	task, err := svc.CreateTask(ctx, "点名", 10, "t1")
	require.NoError(t, err)
	loc := Location{Lng: f64(1), Lat: f64(2)}

	tests := []struct {
		name   string
		taskID uint
		uid    string
		loc    Location
		want   error
	}{
		{"missing uid", task.TaskID, "", loc, util.ErrIncompleteData},
		{"missing task id", 0, "u1", loc, util.ErrIncompleteData},
		{"missing latitude", task.TaskID, "u1", Location{Lng: f64(1)}, util.ErrMissingLocation},
		{"location reported before missing ids", 0, "", Location{}, util.ErrMissingLocation},
		{"unknown task", 999, "u1", loc, util.ErrTaskNotFound},
		{"unknown user", task.TaskID, "ghost", loc, util.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Submit(ctx, tt.taskID, tt.uid, tt.loc), tt.want)
		})
	}
}

func TestCheckinService_ExpiryAppliesToStudentsOnly(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)
	svc.Now = func() time.Time { return base }

	task, err := svc.CreateTask(ctx, "早读", 10, "t1")
	require.NoError(t, err)
	assert.Equal(t, base.Add(10*time.Minute), task.ExpireTime)

	svc.Now = func() time.Time { return base.Add(11 * time.Minute) }
	loc := Location{Lng: f64(1), Lat: f64(2)}
	assert.ErrorIs(t, svc.Submit(ctx, task.TaskID, "u1", loc), util.ErrTaskExpired)

	require.NoError(t, svc.Leave(ctx, task.TaskID, "u1", "t1"))
	records, err := svc.Records(ctx, task.TaskID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "由李老师请假", records[0].Note)
	assert.Nil(t, records[0].Latitude)

	assert.ErrorIs(t, svc.Leave(ctx, task.TaskID, "u1", "t1"), util.ErrAlreadyCheckedIn)

	svc.EnforceExpiry = false
	require.NoError(t, svc.Submit(ctx, task.TaskID, "u2", loc))
}

func TestCheckinService_CreateTaskValidation(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "  ", 10, "t1")
	assert.ErrorIs(t, err, util.ErrIncompleteData)
	_, err = svc.CreateTask(ctx, "点名", 0, "t1")
	assert.ErrorIs(t, err, util.ErrInvalidExpire)
	_, err = svc.CreateTask(ctx, "点名", -5, "t1")
	assert.ErrorIs(t, err, util.ErrInvalidExpire)
}

func TestCheckinService_ListValidOnly(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()
	base := time.Now()
	svc.Now = func() time.Time { return base }

	_, err := svc.CreateTask(ctx, "短", 1, "t1")
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, "长", 60, "t1")
	require.NoError(t, err)

	svc.Now = func() time.Time { return base.Add(30 * time.Minute) }
	all, err := svc.ListTasks(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	valid, err := svc.ListTasks(ctx, true)
	require.NoError(t, err)
	require.Len(t, valid, 1)
	assert.Equal(t, "长", valid[0].TaskName)
	assert.Equal(t, "李老师", valid[0].Name)
}

func TestCheckinService_UncheckedComplement(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()
	task, err := svc.CreateTask(ctx, "点名", 10, "t1")
	require.NoError(t, err)
	require.NoError(t, svc.Submit(ctx, task.TaskID, "u1", Location{Lng: f64(1), Lat: f64(2)}))

	unchecked, err := svc.Unchecked(ctx, task.TaskID)
	require.NoError(t, err)
	uids := make([]string, 0, len(unchecked))
	for _, m := range unchecked {
		uids = append(uids, m.UID)
	}
	assert.ElementsMatch(t, []string{"t1", "u2"}, uids)

	_, err = svc.Unchecked(ctx, 404)
	assert.ErrorIs(t, err, util.ErrTaskNotFound)

	records, err := svc.Records(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
