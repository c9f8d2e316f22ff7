package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DB ---
type MockDB struct {
	mock.Mock
}

var _ DB = (*MockDB)(nil)

func (m *MockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := m.Called(ctx, sql, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(pgx.Rows), ret.Error(1)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

func (m *MockDB) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeRow scans fixed values, or fails with err.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		case *[]byte:
			*p = []byte(r.values[i].(string))
		case *bool:
			*p = r.values[i].(bool)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

// fakeRows iterates over fakeRow values.
type fakeRows struct {
	rows []fakeRow
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.rows[r.pos-1].values, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return r.rows[r.pos-1].Scan(dest...)
}

func recordRow(id string, created time.Time, fields string) fakeRow {
	return fakeRow{values: []any{id, created, fields}}
}

func sqlStarting(prefix string) any {
	return mock.MatchedBy(func(sql string) bool {
		return strings.HasPrefix(strings.TrimSpace(sql), prefix)
	})
}

type StoreTestSuite struct {
	suite.Suite
	db    *MockDB
	store *Store
	ctx   context.Context
	now   time.Time
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (suite *StoreTestSuite) SetupTest() {
	suite.db = new(MockDB)
	suite.store = NewStore(suite.db)
	suite.ctx = context.Background()
	suite.now = time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC)
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.db.AssertExpectations(suite.T())
}

func (suite *StoreTestSuite) TestUpdate_PreconditionIsPartOfTheUpdate() {
	var sql string
	var args []any
	suite.db.On("QueryRow", suite.ctx, sqlStarting("UPDATE records"), mock.Anything).
		Run(func(a mock.Arguments) {
			sql = a.String(1)
			args = a.Get(2).([]any)
		}).
		Return(recordRow("recBAL1", suite.now, `{"Current Balance": 10}`)).Once()

	rec, err := suite.store.Update(suite.ctx, models.TablePTOBalances, "recBAL1",
		models.Fields{models.FieldCurrentBalance: models.Number(decimal.NewFromInt(10))},
		models.Precondition{Field: models.FieldCurrentBalance, Equals: decimal.NewFromInt(15), OrBlank: true})

	suite.Require().NoError(err)
	suite.Equal("recBAL1", rec.ID)
	suite.Equal(json.Number("10"), rec.Fields[models.FieldCurrentBalance])
	suite.Contains(sql, "WHERE table_name = $3 AND id = $4 AND (fields->($5::text) = $6::jsonb OR")
	suite.Contains(sql, "RETURNING id, created_time, fields")
	suite.Equal(models.TablePTOBalances, args[2])
	suite.Equal("recBAL1", args[3])
	suite.Equal(models.FieldCurrentBalance, args[4])
	suite.Equal("15", args[5])
}

func (suite *StoreTestSuite) TestUpdate_FailedPreconditionIsConflict() {
	suite.db.On("QueryRow", suite.ctx, sqlStarting("UPDATE records"), mock.Anything).
		Return(fakeRow{err: pgx.ErrNoRows}).Once()
	suite.db.On("QueryRow", suite.ctx, sqlStarting("SELECT EXISTS"), []any{models.TablePTOBalances, "recBAL1"}).
		Return(fakeRow{values: []any{true}}).Once()

	_, err := suite.store.Update(suite.ctx, models.TablePTOBalances, "recBAL1",
		models.Fields{models.FieldCurrentBalance: 5},
		models.Precondition{Field: models.FieldCurrentBalance, Equals: 15})

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestUpdate_MissingRecordIsNotFound() {
	suite.db.On("QueryRow", suite.ctx, sqlStarting("UPDATE records"), mock.Anything).
		Return(fakeRow{err: pgx.ErrNoRows}).Once()
	suite.db.On("QueryRow", suite.ctx, sqlStarting("SELECT EXISTS"), mock.Anything).
		Return(fakeRow{values: []any{false}}).Once()

	_, err := suite.store.Update(suite.ctx, models.TablePTOBalances, "recGONE",
		models.Fields{models.FieldCurrentBalance: 5},
		models.Precondition{Field: models.FieldCurrentBalance, Equals: 15})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.NotErrorIs(err, apperrors.ErrConflict)
}

func (suite *StoreTestSuite) TestUpdate_DatabaseFailureIsPersistence() {
	suite.db.On("QueryRow", suite.ctx, sqlStarting("UPDATE records"), mock.Anything).
		Return(fakeRow{err: errors.New("connection reset by peer")}).Once()

	_, err := suite.store.Update(suite.ctx, models.TablePTOBalances, "recBAL1", models.Fields{models.FieldCurrentBalance: 5})

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *StoreTestSuite) TestUpdate_NilClearsField() {
	var args []any
	suite.db.On("QueryRow", suite.ctx, sqlStarting("UPDATE records"), mock.Anything).
		Run(func(a mock.Arguments) { args = a.Get(2).([]any) }).
		Return(recordRow("recN1", suite.now, `{}`)).Once()

	_, err := suite.store.Update(suite.ctx, models.TableNotifications, "recN1", models.Fields{models.FieldSubject: nil})

	suite.Require().NoError(err)
	suite.Equal("{}", args[0])
	suite.Equal([]string{models.FieldSubject}, args[1])
}

func (suite *StoreTestSuite) TestGet_NoRowsIsNotFound() {
	suite.db.On("QueryRow", suite.ctx, sqlStarting("SELECT id"), []any{models.TableApprovals, "recX"}).
		Return(fakeRow{err: pgx.ErrNoRows}).Once()

	_, err := suite.store.Get(suite.ctx, models.TableApprovals, "recX")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestCreate_FailureIsPersistence() {
	suite.db.On("QueryRow", suite.ctx, sqlStarting("INSERT INTO records"), mock.Anything).
		Return(fakeRow{err: errors.New("disk full")}).Once()

	_, err := suite.store.Create(suite.ctx, models.TableBalanceTransactions, models.Fields{models.FieldReason: "x"})

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *StoreTestSuite) TestQueryPage_ExtraRowSignalsNextPage() {
	var sql string
	var args []any
	rows := &fakeRows{rows: []fakeRow{
		recordRow("recT3", suite.now.Add(2*time.Second), `{"Balance After": 14}`),
		recordRow("recT2", suite.now.Add(time.Second), `{"Balance After": 17}`),
		recordRow("recT1", suite.now, `{"Balance After": 19}`),
	}}
	suite.db.On("Query", suite.ctx, sqlStarting("SELECT id, created_time, fields FROM records"), mock.Anything).
		Run(func(a mock.Arguments) {
			sql = a.String(1)
			args = a.Get(2).([]any)
		}).
		Return(rows, nil).Once()

	page, err := suite.store.QueryPage(suite.ctx, models.TableBalanceTransactions, models.Query{
		Filter: models.Filter{}.And(models.Eq(models.FieldEmployee, "recEMP1")),
		Sort: []models.SortField{
			{Field: models.FieldTransactionDate, Direction: models.Desc},
			{Field: models.FieldCreated, Direction: models.Desc},
		},
		PageSize: 2,
	})

	suite.Require().NoError(err)
	suite.Require().Len(page.Records, 2)
	suite.Equal("recT3", page.Records[0].ID)
	suite.NotEmpty(page.Offset)
	suite.Contains(sql, "ORDER BY fields->($4::text) DESC NULLS LAST, created_time DESC, seq DESC")
	suite.Contains(sql, "LIMIT $5")
	suite.Equal(3, args[len(args)-1])
}

func (suite *StoreTestSuite) TestQueryPage_QueryFailure() {
	suite.db.On("Query", suite.ctx, mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := suite.store.QueryPage(suite.ctx, models.TablePTORequests, models.Query{})

	suite.Error(err)
}
