package memcached_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/driver/memcached"
	testingUtils "github.com/kvbrowse/kvcore/internal/testing"
	"github.com/kvbrowse/kvcore/kv"
)

func connected(t *testing.T, replies map[string]string) (*memcached.Driver, *testingUtils.MockTransport) {
	t.Helper()

	mock := testingUtils.NewRespondingTransport(t, func(request []byte) any {
		reply, ok := replies[string(request)]
		if !ok {
			return "ERROR\r\n"
		}

		return reply
	})

	d, err := memcached.New(mock.Dialer())
	require.NoError(t, err)
	require.NoError(t, d.Connect(context.Background()))

	return d, mock
}

func meta(key string, exp int) string {
	return fmt.Sprintf("key=%s exp=%d la=1 cas=1 fetch=no cls=1 size=60", key, exp)
}

func TestListKeysPage(t *testing.T) {
	t.Parallel()

	replies := map[string]string{
		"stats\r\n": "STAT pid 1\r\nSTAT curr_items 10\r\nEND\r\n",
	}

	var dump strings.Builder

	for i := range 10 {
		key := fmt.Sprintf("key%02d", i)
		dump.WriteString(meta(key, -1) + "\r\n")

		switch i {
		case 2:
			replies["me "+key+"\r\n"] = "SERVER_ERROR out of memory\r\n"
		case 4:
			replies["me "+key+"\r\n"] = "ME " + key + " exp=30 la=1 cas=1 fetch=no cls=1 size=60\r\n"
		default:
			replies["me "+key+"\r\n"] = "ME " + key + " exp=-1 la=1 cas=1 fetch=no cls=1 size=60\r\n"
		}
	}

	dump.WriteString("END\r\n")
	replies["lru_crawler metadump all\r\n"] = dump.String()

	d, mock := connected(t, replies)

	var progress []int

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{Pattern: "key*", Limit: 10}, func(p int) { //nolint:exhaustruct
		progress = append(progress, p)
	})
	require.NoError(t, err)

	require.Len(t, page.Keys, 10)
	assert.Equal(t, "key00", page.Keys[0].Key().KeyString().Raw())
	assert.True(t, page.Keys[2].Key().TTL().IsNoExpiration())
	assert.True(t, page.Keys[4].Key().TTL().Equals(kv.Seconds(30)))
	assert.True(t, page.Keys[9].Key().TTL().IsNoExpiration())
	require.Len(t, page.TTLFailures, 1)
	assert.Equal(t, "key02", page.TTLFailures[0].Raw())
	assert.Equal(t, uint64(0), page.NextCursor)
	assert.True(t, page.HasTotal)
	assert.Equal(t, int64(10), page.Total)
	assert.Equal(t, []int{0, 50, 75, 100}, progress)
	assert.Equal(t, 12, mock.SentCount())
}

func TestListKeysPage_CrawlerBusy(t *testing.T) {
	t.Parallel()

	d, mock := connected(t, map[string]string{
		"lru_crawler metadump all\r\n": "BUSY currently processing crawler request\r\n",
	})

	page, err := d.ListKeysPage(context.Background(), driver.PageRequest{}, nil) //nolint:exhaustruct
	require.NoError(t, err)
	assert.Empty(t, page.Keys)
	assert.Equal(t, 1, mock.SentCount())
}

func TestKeyOperations(t *testing.T) {
	t.Parallel()

	d, mock := connected(t, map[string]string{
		"set user:1 0 0 11\r\nhello world\r\n": "STORED\r\n",
		"get user:1\r\n":                      "VALUE user:1 0 11\r\nhello world\r\nEND\r\n",
		"delete user:1\r\n":                   "DELETED\r\n",
		"stats\r\n":                           "STAT curr_items 0\r\nSTAT version 1.6.21\r\nEND\r\n",
	})

	ctx := context.Background()
	key := kv.KeyOf("user:1")

	require.NoError(t, d.CreateKey(ctx, kv.NewKeyValue(key, kv.StringOf("hello world"))))
	assert.Equal(t, "set user:1 0 0 11\r\nhello world\r\n", mock.SentStrings()[0])

	pair, err := d.LoadKey(ctx, key, kv.TypeString)
	require.NoError(t, err)
	assert.Equal(t, "hello world", pair.ValueString())

	deleted, err := d.DeleteKey(ctx, key)
	require.NoError(t, err)
	assert.True(t, deleted)

	info, err := d.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.6.21", info["version"])

	db, err := d.CurrentDatabaseInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), db.Keys)

	_, err = d.Execute(ctx, "flush_all")
	require.ErrorIs(t, err, driver.ErrServer)
}
