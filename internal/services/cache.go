package services

// LocalCache is the per-user key-value mirror. Implementations may fail on
// any call (disk full, closed database); the gateway degrades every cache
// failure to a logged no-op, so none of these errors reach end users.
type LocalCache interface {
	Get(key string) (value string, found bool, err error)
	Set(key string, value string) error
	Remove(key string) error
}

const (
	userRecordsCachePrefix = "symptomRecords_"

	// UserCookieName also serves as the stable identifier under which the
	// currently selected user name persists across sessions.
	UserCookieName = "symptom_tracker_user"
)

// CacheKeyForUser returns the mirror key holding the serialized record
// list of one user.
func CacheKeyForUser(userName string) string {
	return userRecordsCachePrefix + userName
}
