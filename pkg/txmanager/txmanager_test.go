package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IS-SalonBookingService/pkg/dbmetrics"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pq.Error{Code: "40001"})) // serialization_failure
	assert.True(t, IsRetryable(&pq.Error{Code: "40P01"})) // deadlock_detected

	assert.False(t, IsRetryable(&pq.Error{Code: "23505"})) // unique_violation
	assert.False(t, IsRetryable(errors.New("plain error")))
	assert.False(t, IsRetryable(nil))
}

func TestIsRetryable_WrappedError(t *testing.T) {
	err := fmt.Errorf("%w: commit: %w", ErrTransaction, &pq.Error{Code: "40001"})
	assert.True(t, IsRetryable(err))

	err = fmt.Errorf("%w: commit: %w", ErrTransaction, &pq.Error{Code: "23505"})
	assert.False(t, IsRetryable(err))
}

type fakeTx struct {
	commitErr error
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error   { return t.commitErr }
func (t *fakeTx) Rollback() error { return sql.ErrTxDone }

type fakeTxBeginner struct {
	begun      int
	commitErrs []error
}

func (b *fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if b.begun < len(b.commitErrs) {
		commitErr = b.commitErrs[b.begun]
	}
	b.begun++
	return &fakeTx{commitErr: commitErr}, nil
}

func TestDoSerializable_RetriesOnSerializationFailureAtCommit(t *testing.T) {
	db := &fakeTxBeginner{commitErrs: []error{
		&pq.Error{Code: "40001"},
		&pq.Error{Code: "40001"},
		nil,
	}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, db.begun)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeTxBeginner{commitErrs: []error{
		&pq.Error{Code: "40001"},
		&pq.Error{Code: "40001"},
		&pq.Error{Code: "40001"},
	}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, maxSerializableRetries, attempts)
}

func TestDoSerializable_NonRetryableCommitErrorFailsImmediately(t *testing.T) {
	db := &fakeTxBeginner{commitErrs: []error{
		&pq.Error{Code: "23505"},
	}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransaction)
	assert.Equal(t, 1, attempts)
}
