package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	tok, err := GenerateJWT("secret", "user-42", "manager", time.Hour)
	require.NoError(t, err)

	id, err := ValidateJWT("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: "user-42", Role: "manager"}, id)

	_, err = ValidateJWT("other", tok)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	tok, err := GenerateJWT("secret", "user-42", "", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT("secret", tok)
	assert.Error(t, err)
}

func TestGenerateJWTNeedsSecret(t *testing.T) {
	_, err := GenerateJWT("", "u", "r", time.Hour)
	assert.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", tok)

	tok, ok = BearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc"} {
		_, ok := BearerToken(h)
		assert.False(t, ok, h)
	}
}

func TestQueryContext(t *testing.T) {
	ctx, cancel := QueryContext(nil, time.Second)
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)

	parent, stop := context.WithCancel(context.Background())
	child, cancel2 := QueryContext(parent, time.Minute)
	defer cancel2()
	stop()
	<-child.Done()
	assert.ErrorIs(t, child.Err(), context.Canceled)
}
