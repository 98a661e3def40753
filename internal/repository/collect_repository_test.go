package repository

import (
	"center_backend/internal/model"
	"center_backend/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRepository_ListTasksFiltersByType(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, "t1", "李老师")
	repo := NewCollectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateTask(ctx, &model.CollectTask{TaskName: "照片", TaskType: model.CollectImage, ExpireTime: time.Now().Add(time.Hour), UID: "t1"}))
	require.NoError(t, repo.CreateTask(ctx, &model.CollectTask{TaskName: "感想", TaskType: model.CollectText, ExpireTime: time.Now().Add(time.Hour), UID: "t1"}))

	images, err := repo.ListTasks(ctx, model.CollectImage)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "照片", images[0].TaskName)
	assert.Equal(t, "image", images[0].TaskType)
	assert.Equal(t, "李老师", images[0].Name)
}

func TestCollectRepository_RecordsAndUnsubmitted(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, "u1", "甲")
	testutil.SeedUser(t, db, "u2", "乙")
	repo := NewCollectRepository(db)
	ctx := context.Background()

	task := &model.CollectTask{TaskName: "感想", TaskType: model.CollectText, ExpireTime: time.Now().Add(time.Hour), UID: "u1"}
	require.NoError(t, repo.CreateTask(ctx, task))

	require.NoError(t, repo.CreateRecord(ctx, &model.CollectRecord{TaskID: task.TaskID, UID: "u1", Content: "hello", Time: time.Now()}))
	assert.ErrorIs(t, repo.CreateRecord(ctx, &model.CollectRecord{TaskID: task.TaskID, UID: "u1", Content: "again", Time: time.Now()}), ErrDuplicate)

	records, err := repo.ListRecords(ctx, task.TaskID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hello", records[0].Content)
	assert.Equal(t, "甲", records[0].Name)

	missing, err := repo.Unsubmitted(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, []model.Member{{UID: "u2", Name: "乙"}}, missing)
}

func TestCollectRepository_UniqueIndexCatchesLateDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedUser(t, db, "u1", "甲")
	repo := NewCollectRepository(db)
	ctx := context.Background()

	task := &model.CollectTask{TaskName: "感想", TaskType: model.CollectText, ExpireTime: time.Now().Add(time.Hour), UID: "u1"}
	require.NoError(t, repo.CreateTask(ctx, task))

	fired := insertBeforeCreate(t, db, "collect_record",
		"INSERT INTO collect_record (taskId, uid, content, time) VALUES (?, ?, ?, ?)",
		task.TaskID, "u1", "抢先", time.Now())

	err := repo.CreateRecord(ctx, &model.CollectRecord{TaskID: task.TaskID, UID: "u1", Content: "hello", Time: time.Now()})
	require.True(t, *fired)
	assert.ErrorIs(t, err, ErrDuplicate)
}
