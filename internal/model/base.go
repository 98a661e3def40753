package model

// Models 返回需要自动迁移的全部表模型
func Models() []interface{} {
	return []interface{}{
		&User{},
		&UserRole{},
		&CheckinTask{},
		&CheckinRecord{},
		&CollectTask{},
		&CollectRecord{},
	}
}
