package apierrors

const (
	MsgFailListTask         = "errorListTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailUpdateTaskStatus = "failUpdateTaskStatus"
	MsgFailRefreshTasks     = "failRefreshTasks"
	MsgFailExportTasks      = "failExportTasks"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidTaskStatus    = "invalidTaskStatus"
	MsgInvalidDragPayload   = "invalidDragPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailListUsers        = "failListUsers"
	MsgFailGetUser          = "failGetUser"
	MsgFailCreateUser       = "failCreateUser"
	MsgInvalidUserID        = "invalidUserID"
	MsgInvalidUserPayload   = "invalidUserPayload"
	MsgUserNotFound         = "userNotFound"
	MsgUnknownTaskUser      = "unknownTaskUser"
	MsgGenericLoadFailure   = "genericLoadFailure"
)
