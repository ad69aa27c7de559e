package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeColumns = []string{"id", "employee_code", "full_name", "email", "department", "created_at"}

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, database.NewFromPool(mock)
}

func TestEmployeeRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO employees").
		WithArgs("id-1", "E1", "Ann Lee", "ann@example.com", "Engineering").
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow("id-1", "E1", "Ann Lee", "ann@example.com", "Engineering", now))

	created, err := repo.Create(context.Background(), employee.Employee{
		ID:           "id-1",
		EmployeeCode: "E1",
		FullName:     "Ann Lee",
		Email:        "ann@example.com",
		Department:   "Engineering",
	})

	require.NoError(t, err)
	assert.Equal(t, "E1", created.EmployeeCode)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_UniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "duplicate code", constraint: "employees_employee_code_key", want: employee.ErrEmployeeCodeExists},
		{name: "duplicate email", constraint: "employees_email_key", want: employee.ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, db := newMockDB(t)
			repo := postgresql.NewEmployeeRepository(db)

			mock.ExpectQuery("INSERT INTO employees").
				WithArgs("id-1", "E1", "Ann Lee", "ann@example.com", "Engineering").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), employee.Employee{
				ID:           "id-1",
				EmployeeCode: "E1",
				FullName:     "Ann Lee",
				Email:        "ann@example.com",
				Department:   "Engineering",
			})

			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmployeeRepository_List(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WillReturnRows(pgxmock.NewRows(employeeColumns).
			AddRow("id-1", "E1", "Ann Lee", "ann@example.com", "Engineering", now).
			AddRow("id-2", "E2", "Bob Ray", "bob@example.com", "Sales", now))

	employees, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "E2", employees[1].EmployeeCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_List_Empty(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM employees").
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	employees, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestEmployeeRepository_GetByEmployeeCode_NotFound(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE employee_code").
		WithArgs("E404").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmployeeCode(context.Background(), "E404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ExistsByCodeOrEmail(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT(.+)EXISTS").
		WithArgs("E1", "ann@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"code_exists", "email_exists"}).AddRow(false, true))

	codeExists, emailExists, err := repo.ExistsByCodeOrEmail(context.Background(), "E1", "ann@example.com")

	require.NoError(t, err)
	assert.False(t, codeExists)
	assert.True(t, emailExists)
}

func TestEmployeeRepository_DeleteByEmployeeCode(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := postgresql.NewEmployeeRepository(db)

		mock.ExpectExec("DELETE FROM employees").
			WithArgs("E1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteByEmployeeCode(context.Background(), "E1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := postgresql.NewEmployeeRepository(db)

		mock.ExpectExec("DELETE FROM employees").
			WithArgs("E404").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteByEmployeeCode(context.Background(), "E404"), employee.ErrEmployeeNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := postgresql.NewEmployeeRepository(db)
		boom := errors.New("connection reset")

		mock.ExpectExec("DELETE FROM employees").
			WithArgs("E1").
			WillReturnError(boom)

		err := repo.DeleteByEmployeeCode(context.Background(), "E1")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestWithTransaction(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := postgresql.NewEmployeeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM employees").
			WithArgs("E1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		err := postgresql.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
			ctx := postgresql.ContextWithTx(context.Background(), tx)
			return repo.DeleteByEmployeeCode(ctx, "E1")
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		mock, db := newMockDB(t)
		repo := postgresql.NewEmployeeRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM employees").
			WithArgs("E404").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		err := postgresql.WithTransaction(context.Background(), db, func(tx pgx.Tx) error {
			ctx := postgresql.ContextWithTx(context.Background(), tx)
			return repo.DeleteByEmployeeCode(ctx, "E404")
		})

		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
