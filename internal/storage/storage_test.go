package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"delivery-console/internal/domain"
	"delivery-console/internal/notify"
	"delivery-console/internal/session"
	"delivery-console/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessions_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	backend := storage.NewRedisSessions(client, session.AppAdmin, time.Hour)

	_, ok, err := backend.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Set(ctx, "token", "abc"))
	value, ok, err := backend.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	assert.True(t, mr.Exists("console:admin:token"))
	assert.Equal(t, time.Hour, mr.TTL("console:admin:token"))

	require.NoError(t, backend.Delete(ctx, "token", "user_role"))
	assert.False(t, mr.Exists("console:admin:token"))
}

func TestRedisSessions_AppsDoNotCollide(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	admin := session.New(storage.NewRedisSessions(client, session.AppAdmin, 0), session.AppAdmin)
	storefront := session.New(storage.NewRedisSessions(client, session.AppStorefront, 0), session.AppStorefront)

	require.NoError(t, admin.SaveLogin(ctx, "admin-token", domain.User{ID: 1, Role: domain.RoleSystemAdmin}))
	require.NoError(t, storefront.SaveLogin(ctx, "client-token", domain.User{ID: 2, Role: domain.RoleClient}))

	require.NoError(t, storefront.Clear(ctx))

	token, err := admin.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin-token", token)
	assert.False(t, mr.Exists("console:storefront:client_token"))
}

func TestRedisSessions_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, _, err := storage.NewRedisSessions(client, session.AppAdmin, 0).Get(context.Background(), "token")
	assert.Error(t, err)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeReader struct {
	messages []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaSink_Publish(t *testing.T) {
	writer := &fakeWriter{}
	sink := storage.NewKafkaSink(writer, "storefront")

	n := notify.Notification{ID: "n1", Message: "Кошик очищено", Kind: notify.KindSuccess}
	require.NoError(t, sink.Publish(context.Background(), n))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "success", string(writer.messages[0].Key))

	var event storage.NotificationEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &event))
	assert.Equal(t, "storefront", event.App)
	assert.Equal(t, "Кошик очищено", event.Notification.Message)

	require.NoError(t, sink.Close())
	assert.True(t, writer.closed)
}

func TestKafkaSink_PublishError(t *testing.T) {
	sink := storage.NewKafkaSink(&fakeWriter{err: errors.New("broker down")}, "admin")
	err := sink.Publish(context.Background(), notify.Notification{Kind: notify.KindError})
	assert.EqualError(t, err, "broker down")
}

func TestNotificationFeed_Next(t *testing.T) {
	payload, err := json.Marshal(storage.NotificationEvent{
		App:          "admin",
		Notification: notify.Notification{Message: "Статус оновлено", Kind: notify.KindInfo},
	})
	require.NoError(t, err)

	feed := storage.NewNotificationFeed(&fakeReader{messages: []kafka.Message{
		{Value: payload},
		{Value: []byte("not json"), Offset: 7},
	}})
	defer feed.Close()

	event, err := feed.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", event.App)
	assert.Equal(t, notify.KindInfo, event.Notification.Kind)

	_, err = feed.Next(context.Background())
	assert.ErrorContains(t, err, "offset 7")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = feed.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
