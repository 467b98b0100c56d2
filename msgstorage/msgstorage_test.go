package msgstorage

import (
	"testing"

	"amqpkit/amqp"
	"amqpkit/config"
	"amqpkit/storage"
)

func newTestMessage(id uint64) *amqp.Message {
	return &amqp.Message{
		ID: id,
		Header: &amqp.ContentHeader{
			ClassID:      amqp.ClassBasic,
			BodySize:     4,
			PropertyList: amqp.NewBasicPropertyList(),
		},
		Exchange:   "",
		RoutingKey: "test",
		BodySize:   4,
		Body: []*amqp.Frame{
			{Type: 3, ChannelID: 1, Payload: []byte("test")},
		},
	}
}

func newTestStorage() *MsgStorage {
	return NewMsgStorage(storage.NewBuntDB(config.DbPathMemory))
}

func TestMsgStorage_AddPersistIterate(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	if err := msgStorage.Add(newTestMessage(1), "testQu"); err != nil {
		t.Fatal(err)
	}
	if err := msgStorage.Add(newTestMessage(2), "testQu"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	found := make(map[uint64]string)
	msgStorage.Iterate(func(queue string, message *amqp.Message) {
		found[message.ID] = queue
	})

	if len(found) != 2 {
		t.Fatalf("Expected 2 messages, actual %d", len(found))
	}
	for id, queue := range found {
		if queue != "testQu" {
			t.Fatalf("Expected message %d in queue testQu, actual %s", id, queue)
		}
	}
}

func TestMsgStorage_AddDelSamePersistCycle(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	message := newTestMessage(1)
	if err := msgStorage.Add(message, "testQu"); err != nil {
		t.Fatal(err)
	}
	if err := msgStorage.Del(message, "testQu"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	count := 0
	msgStorage.Iterate(func(queue string, message *amqp.Message) {
		count++
	})
	if count != 0 {
		t.Fatalf("Expected 0 messages, actual %d", count)
	}
}

func TestMsgStorage_Update(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	message := newTestMessage(1)
	if err := msgStorage.Add(message, "testQu"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	message.DeliveryCount = 3
	if err := msgStorage.Update(message, "testQu"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	var loaded *amqp.Message
	msgStorage.Iterate(func(queue string, message *amqp.Message) {
		loaded = message
	})
	if loaded == nil {
		t.Fatal("Expected message after update")
	}
	if loaded.DeliveryCount != 3 {
		t.Fatalf("Expected DeliveryCount 3, actual %d", loaded.DeliveryCount)
	}
}

func TestMsgStorage_PurgeQueue(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	if err := msgStorage.Add(newTestMessage(1), "quA"); err != nil {
		t.Fatal(err)
	}
	if err := msgStorage.Add(newTestMessage(2), "quAx"); err != nil {
		t.Fatal(err)
	}
	if err := msgStorage.Add(newTestMessage(3), "quB"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	msgStorage.PurgeQueue("quA")

	found := make(map[string]int)
	msgStorage.Iterate(func(queue string, message *amqp.Message) {
		found[queue]++
	})
	if found["quA"] != 0 {
		t.Fatalf("Expected quA purged, actual %d messages", found["quA"])
	}
	// queue names sharing a prefix must not be purged along
	if found["quAx"] != 1 {
		t.Fatalf("Expected 1 message in quAx, actual %d", found["quAx"])
	}
	if found["quB"] != 1 {
		t.Fatalf("Expected 1 message in quB, actual %d", found["quB"])
	}
}

func TestMsgStorage_ReceiveConfirmsDuringPersist(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	done := make(chan bool)
	go func() {
		for i := 0; i < 100; i++ {
			msgStorage.persist()
		}
		done <- true
	}()

	for i := 0; i < 100; i++ {
		msgStorage.ReceiveConfirms()
	}
	<-done
}

func TestMsgStorage_Confirms(t *testing.T) {
	msgStorage := newTestStorage()
	defer msgStorage.Close()

	confirms := msgStorage.ReceiveConfirms()

	message := newTestMessage(1)
	message.ConfirmMeta = amqp.ConfirmMeta{
		DeliveryTag:      1,
		ExpectedConfirms: 1,
	}
	if err := msgStorage.Add(message, "testQu"); err != nil {
		t.Fatal(err)
	}
	msgStorage.persist()

	confirmed := <-confirms
	if confirmed.ID != message.ID {
		t.Fatalf("Expected confirm for message %d, actual %d", message.ID, confirmed.ID)
	}
	if !confirmed.ConfirmMeta.CanConfirm() {
		t.Fatal("Expected message to be confirmable")
	}
}
