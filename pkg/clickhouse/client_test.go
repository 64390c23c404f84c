package clickhouse

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(ClientConfig{
		Host:         "ch.local",
		Port:         9000,
		Database:     "webhub",
		User:         "default",
		Password:     "p@ss",
		DialTimeout:  5 * time.Second,
		MaxExecTime:  30 * time.Second,
		AsyncInsert:  true,
		WaitForAsync: true,
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	require.Equal(t, "clickhouse", u.Scheme)
	require.Equal(t, "ch.local:9000", u.Host)
	require.Equal(t, "/webhub", u.Path)
	pw, _ := u.User.Password()
	require.Equal(t, "p@ss", pw)

	q := u.Query()
	require.Equal(t, "5s", q.Get("dial_timeout"))
	require.Equal(t, "30", q.Get("max_execution_time"))
	require.Equal(t, "1", q.Get("async_insert"))
	require.Equal(t, "1", q.Get("wait_for_async_insert"))
	require.Empty(t, q.Get("read_timeout"))
}

func TestDSNHTTP(t *testing.T) {
	dsn := DSN(ClientConfig{Host: "ch.local", Port: 8123, Database: "webhub", UseHTTP: true})
	require.Contains(t, dsn, "http://")
	require.NotContains(t, dsn, "async_insert")
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient()
	require.ErrorContains(t, err, "host is required")
}

func TestHealthPingsPool(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	c := &Client{db: db}

	mock.ExpectPing()
	require.NoError(t, c.Health(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	require.ErrorContains(t, c.Health(context.Background()), "connection refused")

	mock.ExpectClose()
	require.NoError(t, c.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
