package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func sampleSession() entities.EstimatorSession {
	people, days := int64(2), int64(5)
	return entities.EstimatorSession{
		ID: "sess-1",
		Rows: []entities.OrderRow{
			{ID: "row-1", People: &people, UnitPrice: decimal.NewNullDecimal(decimal.RequireFromString("12.50")), Days: &days},
			{ID: "row-2"},
		},
		CreatedAt: testNow.Add(-time.Minute),
		UpdatedAt: testNow,
		ExpiresAt: testNow.Add(time.Hour),
	}
}

// assertSameSession compares field by field; decimal values are compared by value.
func assertSameSession(t *testing.T, want, got entities.EstimatorSession) {
	t.Helper()
	require.Equal(t, want.ID, got.ID)
	require.Len(t, got.Rows, len(want.Rows))
	for i := range want.Rows {
		w, g := want.Rows[i], got.Rows[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.People, g.People)
		assert.Equal(t, w.Days, g.Days)
		assert.Equal(t, w.UnitPrice.Valid, g.UnitPrice.Valid)
		assert.True(t, w.UnitPrice.Decimal.Equal(g.UnitPrice.Decimal), "row %d price %s != %s", i, w.UnitPrice.Decimal, g.UnitPrice.Decimal)
	}
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt), "expires %v != %v", want.ExpiresAt, got.ExpiresAt)
}

// exerciseRepository runs the behaviour shared by every session store.
func exerciseRepository(t *testing.T, repo interfaces.ISessionRepository) {
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	s := sampleSession()
	require.NoError(t, repo.Save(ctx, s))

	got, err = repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assertSameSession(t, s, got)

	require.NoError(t, repo.Delete(ctx, "sess-1"))
	got, err = repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestSessionMemoryRepository(t *testing.T) {
	repo := NewSessionMemoryRepository()
	repo.now = func() time.Time { return testNow }
	exerciseRepository(t, repo)

	t.Run("stored copy is isolated", func(t *testing.T) {
		s := sampleSession()
		require.NoError(t, repo.Save(context.Background(), s))
		*s.Rows[0].People = 99

		got, _ := repo.Get(context.Background(), "sess-1")
		assert.EqualValues(t, 2, *got.Rows[0].People)
		*got.Rows[0].Days = 42

		again, _ := repo.Get(context.Background(), "sess-1")
		assert.EqualValues(t, 5, *again.Rows[0].Days)
	})

	t.Run("expired session is evicted", func(t *testing.T) {
		s := sampleSession()
		s.ID = "old"
		s.ExpiresAt = testNow.Add(-time.Second)
		require.NoError(t, repo.Save(context.Background(), s))
		before := repo.Len()

		got, err := repo.Get(context.Background(), "old")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
		assert.Equal(t, before-1, repo.Len())
	})
}

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSessionRedisRepository(t *testing.T) {
	rdb := newFakeRedis()
	repo := newSessionRedisRepository(rdb)
	repo.now = func() time.Time { return testNow }
	exerciseRepository(t, repo)

	t.Run("key expires with the session", func(t *testing.T) {
		require.NoError(t, repo.Save(context.Background(), sampleSession()))
		assert.Equal(t, time.Hour, rdb.ttl["estimator:session:sess-1"])
		assert.Contains(t, rdb.data["estimator:session:sess-1"], `"unit_price":"12.5"`)
	})

	t.Run("ttl floor", func(t *testing.T) {
		s := sampleSession()
		s.ExpiresAt = testNow
		require.NoError(t, repo.Save(context.Background(), s))
		assert.Equal(t, time.Second, rdb.ttl["estimator:session:sess-1"])
	})

	t.Run("corrupt payload", func(t *testing.T) {
		rdb.data["estimator:session:bad"] = "{"
		_, err := repo.Get(context.Background(), "bad")
		assert.Error(t, err)
	})

	t.Run("client error", func(t *testing.T) {
		rdb.err = errors.New("connection refused")
		defer func() { rdb.err = nil }()
		_, err := repo.Get(context.Background(), "sess-1")
		assert.EqualError(t, err, "connection refused")
	})
}

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	table string
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.table = aws.ToString(in.TableName)
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestSessionDynamoRepository(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newSessionDynamoRepository(ddb, "")
	repo.now = func() time.Time { return testNow }
	exerciseRepository(t, repo)

	assert.Equal(t, defaultSessionsTableName, ddb.table)

	t.Run("item layout", func(t *testing.T) {
		require.NoError(t, repo.Save(context.Background(), sampleSession()))
		item := ddb.items["sess-1"]

		exp, ok := item["expires_at"].(*types.AttributeValueMemberN)
		require.True(t, ok, "expires_at must be a number for DynamoDB TTL")
		assert.Equal(t, "1792069200", exp.Value)

		rows, ok := item["rows"].(*types.AttributeValueMemberL)
		require.True(t, ok)
		require.Len(t, rows.Value, 2)
		unset := rows.Value[1].(*types.AttributeValueMemberM).Value
		assert.NotContains(t, unset, "people")
		assert.NotContains(t, unset, "unit_price")
	})

	t.Run("expired item reads as missing", func(t *testing.T) {
		s := sampleSession()
		s.ID = "old"
		s.ExpiresAt = testNow.Add(-time.Minute)
		require.NoError(t, repo.Save(context.Background(), s))

		got, err := repo.Get(context.Background(), "old")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}
