package redis

import "fmt"

// snapshotKey returns the Redis key holding the persisted blob for a namespace
func snapshotKey(prefix, namespace string) string {
	return fmt.Sprintf("%s:persist:%s", prefix, namespace)
}
