package amqp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"amqpkit/pool"
)

// DefaultMaxAcceptedLength bounds any single length prefix the decoder
// trusts before allocating. Length fields arrive from the peer and may be
// corrupt or hostile.
const DefaultMaxAcceptedLength = 16 * 1024 * 1024

var maxAcceptedLength uint32 = DefaultMaxAcceptedLength

// SetMaxAcceptedLength changes the largest length prefix decoders accept.
// Call it once before any decoding starts; decoders read it without locking.
func SetMaxAcceptedLength(limit uint32) {
	maxAcceptedLength = limit
}

// DefaultFrameMaxSize bounds a single frame payload
const DefaultFrameMaxSize = 65536

var frameMaxSize uint32 = DefaultFrameMaxSize

// SetFrameMaxSize changes the largest frame payload ReadFrame accepts.
// Call it once before any decoding starts; decoders read it without locking.
func SetFrameMaxSize(limit uint32) {
	frameMaxSize = limit
}

var bufferPool = pool.NewBufferPool(4096)

func checkLength(length uint32) error {
	if length > maxAcceptedLength {
		return fmt.Errorf("%w: %d > %d", ErrLengthExceeded, length, maxAcceptedLength)
	}
	return nil
}

// ReadFrame reads and checks raw frame from io.Reader
func ReadFrame(r io.Reader) (frame *Frame, err error) {
	// 7 bytes for type, channel and size
	var header = make([]byte, 7)
	if err = binary.Read(r, binary.BigEndian, header); err != nil {
		return nil, truncated(err)
	}

	frame = &Frame{}
	headerBuf := bytes.NewBuffer(header)

	frame.Type, _ = ReadOctet(headerBuf)
	frame.ChannelID, _ = ReadShort(headerBuf)

	payloadSize, _ := ReadLong(headerBuf)
	if err = checkLength(payloadSize); err != nil {
		return nil, err
	}
	if payloadSize > frameMaxSize {
		return nil, fmt.Errorf("%w: frame payload %d > %d", ErrLengthExceeded, payloadSize, frameMaxSize)
	}
	var payload = make([]byte, payloadSize+1)
	if err = binary.Read(r, binary.BigEndian, payload); err != nil {
		return nil, truncated(err)
	}
	frame.Payload = payload[0:payloadSize]

	// check frame end
	if payload[payloadSize] != FrameEnd {
		return nil, fmt.Errorf(
			"the frame-end octet MUST always be the hexadecimal value 'xCE', %x given",
			payload[payloadSize])
	}

	return frame, nil
}

// WriteFrame pack amqp-frame into bytes and write it to io.Writer
func WriteFrame(writer io.Writer, frame *Frame) (err error) {
	buffer := bufferPool.Get()
	defer bufferPool.Put(buffer)

	WriteOctet(buffer, frame.Type)
	WriteShort(buffer, frame.ChannelID)
	// size + payload
	WriteLongstr(buffer, frame.Payload)
	WriteOctet(buffer, FrameEnd)

	_, err = writer.Write(buffer.Bytes())
	return err
}

// ReadOctet reads octet (byte)
func ReadOctet(r io.Reader) (data byte, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteOctet writes octet (byte)
func WriteOctet(wr io.Writer, data byte) error {
	return binary.Write(wr, binary.BigEndian, data)
}

// ReadShort reads 2 bytes as uint16
func ReadShort(r io.Reader) (data uint16, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteShort writes 2 bytes from uint16
func WriteShort(wr io.Writer, data uint16) error {
	return binary.Write(wr, binary.BigEndian, &data)
}

// ReadLong reads 4 bytes as uint32
func ReadLong(r io.Reader) (data uint32, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteLong writes 4 bytes from uint32
func WriteLong(wr io.Writer, data uint32) error {
	return binary.Write(wr, binary.BigEndian, &data)
}

// ReadLonglong reads 8 bytes as uint64
func ReadLonglong(r io.Reader) (data uint64, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteLonglong writes 8 bytes from uint64
func WriteLonglong(wr io.Writer, data uint64) error {
	return binary.Write(wr, binary.BigEndian, &data)
}

// ReadTimestamp reads 8 bytes as unix-time seconds
var ReadTimestamp = ReadLonglong

// WriteTimestamp writes 8 bytes from unix-time seconds
var WriteTimestamp = WriteLonglong

// ReadFloat reads 4 bytes as float32
func ReadFloat(r io.Reader) (data float32, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteFloat writes 4 bytes from float32
func WriteFloat(wr io.Writer, data float32) error {
	return binary.Write(wr, binary.BigEndian, &data)
}

// ReadDouble reads 8 bytes as float64
func ReadDouble(r io.Reader) (data float64, err error) {
	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		err = truncated(err)
	}
	return
}

// WriteDouble writes 8 bytes from float64
func WriteDouble(wr io.Writer, data float64) error {
	return binary.Write(wr, binary.BigEndian, &data)
}

// ReadShortstr reads string, prefixed with 1 byte length
func ReadShortstr(r io.Reader) (data string, err error) {
	var length byte

	length, err = ReadOctet(r)
	if err != nil {
		return "", err
	}

	strBytes := make([]byte, length)

	if err = binary.Read(r, binary.BigEndian, &strBytes); err != nil {
		return "", truncated(err)
	}
	data = string(strBytes)
	return
}

// WriteShortstr writes string, prefixed with 1 byte length. Strings over
// 255 bytes cannot be represented and are rejected.
func WriteShortstr(wr io.Writer, data string) error {
	if len(data) > 255 {
		return fmt.Errorf("short string of %d bytes exceeds the 255 byte limit", len(data))
	}
	if err := binary.Write(wr, binary.BigEndian, byte(len(data))); err != nil {
		return err
	}
	return binary.Write(wr, binary.BigEndian, []byte(data))
}

// ReadLongstr reads bytes, prefixed with 4 bytes length
func ReadLongstr(r io.Reader) (data []byte, err error) {
	var length uint32

	length, err = ReadLong(r)
	if err != nil {
		return nil, err
	}
	if err = checkLength(length); err != nil {
		return nil, err
	}

	data = make([]byte, length)

	if err = binary.Read(r, binary.BigEndian, &data); err != nil {
		return nil, truncated(err)
	}
	return
}

// WriteLongstr writes bytes, prefixed with 4 bytes length
func WriteLongstr(wr io.Writer, data []byte) error {
	if err := binary.Write(wr, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	return binary.Write(wr, binary.BigEndian, data)
}

// ReadDecimal reads decimal as scale octet and value long
func ReadDecimal(r io.Reader) (data Decimal, err error) {
	if data.Scale, err = ReadOctet(r); err != nil {
		return
	}
	var value uint32
	if value, err = ReadLong(r); err != nil {
		return
	}
	data.Value = int32(value)
	return
}

// WriteDecimal writes decimal as scale octet and value long
func WriteDecimal(wr io.Writer, data Decimal) (err error) {
	if err = WriteOctet(wr, data.Scale); err != nil {
		return err
	}
	return WriteLong(wr, uint32(data.Value))
}

/*
ReadTable reads amqp-field-table

The table payload is length prefixed. Parsing is restricted to exactly the
declared byte count: every key-value pair must decode cleanly and the region
must be consumed in full.
*/
func ReadTable(r io.Reader) (table *Table, err error) {
	data, err := ReadLongstr(r)
	if err != nil {
		return nil, fmt.Errorf("field table: %w", err)
	}

	table = &Table{}
	buf := bytes.NewReader(data)
	for buf.Len() > 0 {
		key, err := ReadShortstr(buf)
		if err != nil {
			return nil, fmt.Errorf("field table key at offset %d: %w", len(data)-buf.Len(), err)
		}

		value, err := ReadValue(buf)
		if err != nil {
			return nil, fmt.Errorf("field table key '%s': %w", key, err)
		}
		*table = append(*table, TableEntry{Key: key, Value: value})
	}

	return table, nil
}

// WriteTable writes amqp-field-table
func WriteTable(writer io.Writer, table *Table) (err error) {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	if table != nil {
		for _, entry := range *table {
			if err = WriteShortstr(buf, entry.Key); err != nil {
				return err
			}
			if err = WriteValue(buf, entry.Value); err != nil {
				return err
			}
		}
	}
	return WriteLongstr(writer, buf.Bytes())
}

// ReadArray reads amqp-field-array with the same restricted-region
// discipline as ReadTable, but without keys
func ReadArray(r io.Reader) (items []interface{}, err error) {
	data, err := ReadLongstr(r)
	if err != nil {
		return nil, fmt.Errorf("field array: %w", err)
	}

	items = make([]interface{}, 0)
	buf := bytes.NewReader(data)
	for buf.Len() > 0 {
		value, err := ReadValue(buf)
		if err != nil {
			return nil, fmt.Errorf("field array item %d: %w", len(items), err)
		}
		items = append(items, value)
	}
	return items, nil
}

// WriteArray writes amqp-field-array
func WriteArray(writer io.Writer, items []interface{}) (err error) {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	for _, item := range items {
		if err = WriteValue(buf, item); err != nil {
			return err
		}
	}
	return WriteLongstr(writer, buf.Bytes())
}

/*
ReadValue reads amqp-field-value

Field values are self-describing: one tag byte selects the variant, payload
follows. Values nest through tables and arrays with no depth bound other
than input size.

't' bool            boolean
'b' int8            short-short-int
's' int16           short-int
'I' int32           long-int
'l' int64           long-long-int
'f' float32         float
'd' float64         double
'D' Decimal         decimal-value
'S' string          long-string
'T' time.Time       timestamp
'F' Table           field-table
'A' []interface{}   field-array
'V' nil             no-field
'x' []byte          opaque bytes
*/
func ReadValue(r io.Reader) (data interface{}, err error) {
	tag, err := ReadOctet(r)
	if err != nil {
		return nil, err
	}

	switch tag {
	case 't':
		value, err := ReadOctet(r)
		if err != nil {
			return nil, err
		}
		return value != 0, nil
	case 'b':
		var value int8
		if err = binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, truncated(err)
		}
		return value, nil
	case 's':
		var value int16
		if err = binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, truncated(err)
		}
		return value, nil
	case 'I':
		var value int32
		if err = binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, truncated(err)
		}
		return value, nil
	case 'l':
		var value int64
		if err = binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, truncated(err)
		}
		return value, nil
	case 'f':
		value, err := ReadFloat(r)
		if err != nil {
			return nil, err
		}
		return value, nil
	case 'd':
		value, err := ReadDouble(r)
		if err != nil {
			return nil, err
		}
		return value, nil
	case 'D':
		value, err := ReadDecimal(r)
		if err != nil {
			return nil, err
		}
		return value, nil
	case 'S':
		value, err := ReadLongstr(r)
		if err != nil {
			return nil, err
		}
		return string(value), nil
	case 'T':
		value, err := ReadTimestamp(r)
		if err != nil {
			return nil, err
		}
		return time.Unix(int64(value), 0), nil
	case 'F':
		value, err := ReadTable(r)
		if err != nil {
			return nil, err
		}
		return *value, nil
	case 'A':
		value, err := ReadArray(r)
		if err != nil {
			return nil, err
		}
		return value, nil
	case 'V':
		return nil, nil
	case 'x':
		value, err := ReadLongstr(r)
		if err != nil {
			return nil, err
		}
		return value, nil
	}

	return nil, fmt.Errorf("%w: 0x%02x", ErrMalformedTag, tag)
}

// WriteValue writes amqp-field-value with its tag byte
func WriteValue(wr io.Writer, value interface{}) (err error) {
	switch value := value.(type) {
	case bool:
		if err = WriteOctet(wr, byte('t')); err == nil {
			if value {
				err = WriteOctet(wr, 1)
			} else {
				err = WriteOctet(wr, 0)
			}
		}
	case int8:
		if err = WriteOctet(wr, byte('b')); err == nil {
			err = binary.Write(wr, binary.BigEndian, value)
		}
	case int16:
		if err = WriteOctet(wr, byte('s')); err == nil {
			err = binary.Write(wr, binary.BigEndian, value)
		}
	case int32:
		if err = WriteOctet(wr, byte('I')); err == nil {
			err = binary.Write(wr, binary.BigEndian, value)
		}
	case int64:
		if err = WriteOctet(wr, byte('l')); err == nil {
			err = binary.Write(wr, binary.BigEndian, value)
		}
	case float32:
		if err = WriteOctet(wr, byte('f')); err == nil {
			err = WriteFloat(wr, value)
		}
	case float64:
		if err = WriteOctet(wr, byte('d')); err == nil {
			err = WriteDouble(wr, value)
		}
	case Decimal:
		if err = WriteOctet(wr, byte('D')); err == nil {
			err = WriteDecimal(wr, value)
		}
	case string:
		if err = WriteOctet(wr, byte('S')); err == nil {
			err = WriteLongstr(wr, []byte(value))
		}
	case time.Time:
		if err = WriteOctet(wr, byte('T')); err == nil {
			err = WriteTimestamp(wr, uint64(value.Unix()))
		}
	case Table:
		if err = WriteOctet(wr, byte('F')); err == nil {
			err = WriteTable(wr, &value)
		}
	case *Table:
		if err = WriteOctet(wr, byte('F')); err == nil {
			err = WriteTable(wr, value)
		}
	case []interface{}:
		if err = WriteOctet(wr, byte('A')); err == nil {
			err = WriteArray(wr, value)
		}
	case nil:
		err = WriteOctet(wr, byte('V'))
	case []byte:
		if err = WriteOctet(wr, byte('x')); err == nil {
			err = WriteLongstr(wr, value)
		}
	default:
		err = fmt.Errorf("unsupported field value type %T", value)
	}
	return
}

// ReadContentHeader reads content header from io.Reader
func ReadContentHeader(r io.Reader) (header *ContentHeader, err error) {
	header = &ContentHeader{}
	if header.ClassID, err = ReadShort(r); err != nil {
		return nil, err
	}
	if header.Weight, err = ReadShort(r); err != nil {
		return nil, err
	}
	if header.BodySize, err = ReadLonglong(r); err != nil {
		return nil, err
	}
	if header.propertyFlags, err = ReadShort(r); err != nil {
		return nil, err
	}

	header.PropertyList = NewBasicPropertyList()
	if err = header.PropertyList.Read(r, header.propertyFlags); err != nil {
		return nil, err
	}

	return header, nil
}

// WriteContentHeader writes content header into io.Writer
func WriteContentHeader(writer io.Writer, header *ContentHeader) (err error) {
	if err = WriteShort(writer, header.ClassID); err != nil {
		return err
	}
	if err = WriteShort(writer, header.Weight); err != nil {
		return err
	}
	if err = WriteLonglong(writer, header.BodySize); err != nil {
		return err
	}

	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	propertyFlags, err := header.PropertyList.Write(buf)
	if err != nil {
		return err
	}
	header.propertyFlags = propertyFlags

	if err = WriteShort(writer, propertyFlags); err != nil {
		return err
	}
	_, err = writer.Write(buf.Bytes())
	return err
}
