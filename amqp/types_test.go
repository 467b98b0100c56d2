package amqp

import (
	"reflect"
	"testing"
)

func TestTable_SetGet(t *testing.T) {
	table := &Table{}
	table.Set("key", int32(1))
	table.Set("key", int32(2))
	table.Set("other", "value")

	if len(*table) != 2 {
		t.Fatalf("Expected 2 entries, actual %d", len(*table))
	}

	value, ok := table.Get("key")
	if !ok || value != int32(2) {
		t.Fatalf("Expected int32(2), actual %v", value)
	}

	if _, ok = table.Get("missing"); ok {
		t.Fatal("Expected missing key")
	}
}

func TestNewMessage(t *testing.T) {
	method := &BasicPublish{
		Exchange:   "ex",
		RoutingKey: "rk",
		Mandatory:  false,
		Immediate:  true,
	}

	message := NewMessage(method)

	if message.Exchange != method.Exchange {
		t.Fatalf("Expected Exchange %s, actual %s", method.Exchange, message.Exchange)
	}

	if message.RoutingKey != method.RoutingKey {
		t.Fatalf("Expected RoutingKey %s, actual %s", method.RoutingKey, message.RoutingKey)
	}

	if message.Mandatory != method.Mandatory {
		t.Fatalf("Expected Mandatory %t, actual %t", method.Mandatory, message.Mandatory)
	}

	if message.Immediate != method.Immediate {
		t.Fatalf("Expected Immediate %t, actual %t", method.Immediate, message.Immediate)
	}
}

func TestMessage_Append(t *testing.T) {
	m := &Message{
		BodySize: 0,
		Body:     make([]*Frame, 0),
	}

	m.Append(&Frame{
		Type:       0,
		ChannelID:  0,
		Payload:    []byte{'t', 'e', 's', 't'},
		CloseAfter: false,
	})

	if m.BodySize != 4 {
		t.Fatalf("Expected BodySize %d, actual %d", 4, m.BodySize)
	}

	m.Append(&Frame{
		Type:       0,
		ChannelID:  0,
		Payload:    []byte{'t', 'e', 's', 't'},
		CloseAfter: false,
	})

	if m.BodySize != 8 {
		t.Fatalf("Expected BodySize %d, actual %d", 8, m.BodySize)
	}

	if len(m.Body) != 2 {
		t.Fatalf("Expected Body len %d, actual %d", 2, len(m.Body))
	}
}

func TestMessage_IsPersistent(t *testing.T) {
	deliveryMode := byte(2)
	message := &Message{
		Header: &ContentHeader{
			PropertyList: &BasicPropertyList{DeliveryMode: &deliveryMode},
		},
	}

	if !message.IsPersistent() {
		t.Fatal("Expected message with delivery mode 2 to be persistent")
	}

	message.Header.PropertyList.DeliveryMode = nil
	if message.IsPersistent() {
		t.Fatal("Expected message without delivery mode to be transient")
	}
}

func TestMessage_Marshal_Unmarshal(t *testing.T) {
	ctype := "text/plain"

	mM := &Message{
		ID: 1,
		Header: &ContentHeader{
			ClassID:  ClassBasic,
			Weight:   0,
			BodySize: 4,
			PropertyList: &BasicPropertyList{
				ContentType: &ctype,
			},
		},
		Exchange:   "",
		RoutingKey: "test",
		Mandatory:  false,
		Immediate:  false,
		BodySize:   4,
		Body: []*Frame{
			{
				Type:       3,
				ChannelID:  1,
				Payload:    []byte{'t', 'e', 's', 't'},
				CloseAfter: false,
			},
		},
	}

	data, err := mM.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	mU := &Message{}
	if err = mU.Unmarshal(data); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(mM, mU) {
		t.Fatalf("Marshaled and unmarshaled structures not equal")
	}
}
