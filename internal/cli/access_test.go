package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccess_ExecsIntoEnvironment(t *testing.T) {
	isolateHome(t)

	fake := &fakeOrchestrator{}
	app := newTestApp(fake)

	require.NoError(t, app.Access(context.Background()))

	require.Len(t, fake.execCalls, 1)
	assert.Equal(t, "kali_sandbox", fake.execCalls[0])
}

func TestAccess_ExecFailurePropagates(t *testing.T) {
	isolateHome(t)

	execErr := errors.New("exit status 126")
	fake := &fakeOrchestrator{err: execErr}
	app := newTestApp(fake)

	err := app.Access(context.Background())
	assert.Equal(t, execErr, err, "access must surface the exec error unchanged")
}

func TestAccess_PrivilegeFailure(t *testing.T) {
	isolateHome(t)

	fake := &fakeOrchestrator{}
	app := newTestApp(fake)
	app.checkPrivilege = func() error { return errors.New("insufficient privilege") }

	require.Error(t, app.Access(context.Background()))
	assert.Empty(t, fake.execCalls)
}
