package amqp

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func sampleArguments() *Table {
	return &Table{
		{Key: "x-max-length", Value: int32(100000)},
		{Key: "x-queue-mode", Value: "lazy"},
	}
}

func TestReadWriteMethod_RoundTrip(t *testing.T) {
	methods := []Method{
		&ConnectionStart{
			VersionMajor:     0,
			VersionMinor:     9,
			ServerProperties: sampleArguments(),
			Mechanisms:       []byte("PLAIN"),
			Locales:          []byte("en_US"),
		},
		&ConnectionStartOk{
			ClientProperties: sampleArguments(),
			Mechanism:        "PLAIN",
			Response:         []byte{0, 'g', 'u', 'e', 's', 't'},
			Locale:           "en_US",
		},
		&ConnectionSecure{Challenge: []byte("challenge")},
		&ConnectionSecureOk{Response: []byte("response")},
		&ConnectionTune{ChannelMax: 4096, FrameMax: 65536, Heartbeat: 10},
		&ConnectionTuneOk{ChannelMax: 4096, FrameMax: 65536, Heartbeat: 10},
		&ConnectionOpen{VirtualHost: "/", Reserved1: "", Reserved2: true},
		&ConnectionOpenOk{Reserved1: ""},
		&ConnectionClose{ReplyCode: 320, ReplyText: "CONNECTION-FORCED", ClassId: 10, MethodId: 40},
		&ConnectionCloseOk{},
		&ChannelOpen{Reserved1: ""},
		&ChannelOpenOk{Reserved1: []byte{}},
		&ChannelFlow{Active: true},
		&ChannelFlowOk{Active: false},
		&ChannelClose{ReplyCode: 406, ReplyText: "PRECONDITION-FAILED", ClassId: 50, MethodId: 10},
		&ChannelCloseOk{},
		&ExchangeDeclare{
			Exchange:  "test.topic",
			Type:      "topic",
			Passive:   false,
			Durable:   true,
			NoWait:    false,
			Arguments: sampleArguments(),
		},
		&ExchangeDeclareOk{},
		&ExchangeDelete{Exchange: "test.topic", IfUnused: true, NoWait: false},
		&ExchangeDeleteOk{},
		&QueueDeclare{
			Queue:      "test.queue",
			Passive:    false,
			Durable:    true,
			Exclusive:  false,
			AutoDelete: true,
			NoWait:     false,
			Arguments:  sampleArguments(),
		},
		&QueueDeclareOk{Queue: "test.queue", MessageCount: 10, ConsumerCount: 2},
		&QueueBind{
			Queue:      "test.queue",
			Exchange:   "test.topic",
			RoutingKey: "log.#",
			NoWait:     true,
			Arguments:  sampleArguments(),
		},
		&QueueBindOk{},
		&QueueUnbind{
			Queue:      "test.queue",
			Exchange:   "test.topic",
			RoutingKey: "log.#",
			Arguments:  sampleArguments(),
		},
		&QueueUnbindOk{},
		&QueuePurge{Queue: "test.queue", NoWait: false},
		&QueuePurgeOk{MessageCount: 5},
		&QueueDelete{Queue: "test.queue", IfUnused: true, IfEmpty: false, NoWait: true},
		&QueueDeleteOk{MessageCount: 3},
		&BasicQos{PrefetchSize: 0, PrefetchCount: 128, Global: true},
		&BasicQosOk{},
		&BasicConsume{
			Queue:       "test.queue",
			ConsumerTag: "ctag-1",
			NoLocal:     false,
			NoAck:       true,
			Exclusive:   false,
			NoWait:      true,
			Arguments:   sampleArguments(),
		},
		&BasicConsumeOk{ConsumerTag: "ctag-1"},
		&BasicCancel{ConsumerTag: "ctag-1", NoWait: true},
		&BasicCancelOk{ConsumerTag: "ctag-1"},
		&BasicPublish{Exchange: "test.topic", RoutingKey: "log.info", Mandatory: true, Immediate: false},
		&BasicReturn{ReplyCode: 312, ReplyText: "NO-ROUTE", Exchange: "test.topic", RoutingKey: "log.info"},
		&BasicDeliver{
			ConsumerTag: "ctag-1",
			DeliveryTag: 42,
			Redelivered: true,
			Exchange:    "test.topic",
			RoutingKey:  "log.info",
		},
		&BasicGet{Queue: "test.queue", NoAck: true},
		&BasicGetOk{
			DeliveryTag:  43,
			Redelivered:  false,
			Exchange:     "test.topic",
			RoutingKey:   "log.info",
			MessageCount: 7,
		},
		&BasicGetEmpty{Reserved1: ""},
		&BasicAck{DeliveryTag: 42, Multiple: true},
		&BasicReject{DeliveryTag: 42, Requeue: false},
		&BasicRecoverAsync{Requeue: true},
		&BasicRecover{Requeue: true},
		&BasicRecoverOk{},
		&TxSelect{},
		&TxSelectOk{},
		&TxCommit{},
		&TxCommitOk{},
		&TxRollback{},
		&TxRollbackOk{},
	}

	for _, method := range methods {
		wr := bytes.NewBuffer(make([]byte, 0))
		if err := WriteMethod(wr, method); err != nil {
			t.Fatalf("%s: %v", method.Name(), err)
		}

		rMethod, err := ReadMethod(wr)
		if err != nil {
			t.Fatalf("%s: %v", method.Name(), err)
		}

		if !reflect.DeepEqual(method, rMethod) {
			t.Fatalf("%s: read and write methods not equal\nexpected %#v\nactual   %#v",
				method.Name(), method, rMethod)
		}

		if wr.Len() != 0 {
			t.Fatalf("%s: %d unconsumed bytes left", method.Name(), wr.Len())
		}
	}
}

func TestReadMethod_UnknownClass(t *testing.T) {
	wr := bytes.NewBuffer(make([]byte, 0))
	WriteShort(wr, 33)
	WriteShort(wr, 10)
	WriteShortstr(wr, "junk that must stay uninterpreted")

	_, err := ReadMethod(wr)
	if !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("Expected ErrUnknownClass, actual %v", err)
	}
}

func TestReadMethod_UnknownMethod(t *testing.T) {
	wr := bytes.NewBuffer(make([]byte, 0))
	WriteShort(wr, ClassBasic)
	WriteShort(wr, 200)

	_, err := ReadMethod(wr)
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("Expected ErrUnknownMethod, actual %v", err)
	}
}

func TestReadMethod_Truncated(t *testing.T) {
	wr := bytes.NewBuffer(make([]byte, 0))
	WriteShort(wr, ClassBasic)
	WriteShort(wr, 80)
	// BasicAck wants a longlong delivery tag, give it two bytes
	wr.Write([]byte{0, 1})

	_, err := ReadMethod(wr)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("Expected ErrTruncatedInput, actual %v", err)
	}
}

// A lone boolean between non-boolean fields packs into its own 16-bit word,
// not into the neighbors.
func TestBasicDeliver_SingleBitWord(t *testing.T) {
	method := &BasicDeliver{
		ConsumerTag: "ctag-1",
		DeliveryTag: 42,
		Redelivered: true,
		Exchange:    "ex",
		RoutingKey:  "rk",
	}

	wr := bytes.NewBuffer(make([]byte, 0))
	if err := WriteMethod(wr, method); err != nil {
		t.Fatal(err)
	}

	expected := bytes.NewBuffer(make([]byte, 0))
	WriteShort(expected, 60)
	WriteShort(expected, 60)
	WriteShortstr(expected, "ctag-1")
	WriteLonglong(expected, 42)
	WriteShort(expected, 1)
	WriteShortstr(expected, "ex")
	WriteShortstr(expected, "rk")

	if !bytes.Equal(wr.Bytes(), expected.Bytes()) {
		t.Fatalf("Expected % x\nactual   % x", expected.Bytes(), wr.Bytes())
	}
}

// Five consecutive booleans share one 16-bit word, LSB first.
func TestQueueDeclare_BitRunSharesOneWord(t *testing.T) {
	method := &QueueDeclare{
		Queue:      "q",
		Passive:    true,
		Durable:    false,
		Exclusive:  true,
		AutoDelete: false,
		NoWait:     true,
		Arguments:  &Table{},
	}

	wr := bytes.NewBuffer(make([]byte, 0))
	if err := WriteMethod(wr, method); err != nil {
		t.Fatal(err)
	}

	expected := bytes.NewBuffer(make([]byte, 0))
	WriteShort(expected, 50)
	WriteShort(expected, 10)
	WriteShort(expected, 0)
	WriteShortstr(expected, "q")
	WriteShort(expected, 1<<0|1<<2|1<<4)
	WriteTable(expected, &Table{})

	if !bytes.Equal(wr.Bytes(), expected.Bytes()) {
		t.Fatalf("Expected % x\nactual   % x", expected.Bytes(), wr.Bytes())
	}
}
