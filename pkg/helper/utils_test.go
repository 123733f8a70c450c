package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "backups/mydb/users.json", ObjectName("backups", "mydb", "users.json"))
	assert.Equal(t, "mydb/users.json", ObjectName("", "mydb", "users.json"))
	assert.Equal(t, "a/b/c.json", ObjectName("/a/", "b/", "c.json"))
}

func TestMillis(t *testing.T) {
	assert.Equal(t, int64(1500), Millis(1500*time.Millisecond))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(errors.New("storage: object does not exist")))
	assert.True(t, IsNotFoundError(errors.New("googleapi: Error 404: Not found")))
	assert.False(t, IsNotFoundError(errors.New("permission denied")))
}
