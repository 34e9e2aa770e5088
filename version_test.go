package quorum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/quorum"
)

func TestVersion(t *testing.T) {
	defer func(release, commit string) {
		quorum.Release, quorum.GitCommit = release, commit
	}(quorum.Release, quorum.GitCommit)

	quorum.Release, quorum.GitCommit = "v1.2.3", ""
	assert.Equal(t, "v1.2.3", quorum.Version())

	quorum.GitCommit = "12345678"
	assert.Equal(t, "v1.2.3 12345678", quorum.Version())
}
