package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"amqpkit/amqp"
	"amqpkit/config"
)

func init() {
	viper.SetEnvPrefix("amqpkit")
	viper.AutomaticEnv()
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)

	flag.Bool("help", false, "Shows the help message")
	flag.String("config", "", "The configuration file to use.")
	flag.String("input", "-", "Binary dump to inspect, '-' for stdin")
	flag.String("format", "method", "Payload kind: method, header, table or frame")

	var levels []string
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	flag.String("log-file", "stdout", "Log file")
	flag.String("log-level", "info", fmt.Sprintf("Log level (%s)", strings.Join(levels, ", ")))

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
}

func main() {
	if viper.GetBool("help") {
		flag.Usage()
		os.Exit(0)
	}

	initLogger(viper.GetString("log-level"), viper.GetString("log-file"))

	var cfg *config.Config
	var err error
	if viper.GetString("config") != "" {
		if cfg, err = config.CreateFromFile(viper.GetString("config")); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	} else {
		cfg, _ = config.CreateDefault()
	}
	amqp.SetMaxAcceptedLength(cfg.Limits.MaxAcceptedLength)
	amqp.SetFrameMaxSize(cfg.Limits.FrameMaxSize)

	data, err := readInput(viper.GetString("input"))
	if err != nil {
		logrus.WithError(err).Fatal("read input")
	}

	if err = inspect(viper.GetString("format"), data); err != nil {
		amqpErr := amqp.NewConnectionError(amqp.DecodeErrorCode(err), err.Error(), 0, 0)
		logrus.WithField("replyCode", amqpErr.ReplyCode).Fatal(amqpErr.ReplyText)
	}
}

func readInput(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(input)
}

func inspect(format string, data []byte) error {
	reader := bytes.NewReader(data)

	switch format {
	case "method":
		method, err := amqp.ReadMethod(reader)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"classId":  method.ClassIdentifier(),
			"methodId": method.MethodIdentifier(),
		}).Infof("%s %+v", method.Name(), method)
	case "header":
		header, err := amqp.ReadContentHeader(reader)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"classId":       header.ClassID,
			"bodySize":      header.BodySize,
			"propertyFlags": fmt.Sprintf("%016b", header.PropertyFlags()),
		}).Infof("content header %+v", header.PropertyList)
	case "table":
		table, err := amqp.ReadTable(reader)
		if err != nil {
			return err
		}
		for _, entry := range *table {
			logrus.Infof("%s = %v", entry.Key, entry.Value)
		}
	case "frame":
		frame, err := amqp.ReadFrame(reader)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"type":      frame.Type,
			"channelId": frame.ChannelID,
			"size":      len(frame.Payload),
		}).Info("frame")
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}

	if reader.Len() != 0 {
		logrus.Warnf("%d trailing bytes left after decode", reader.Len())
	}
	return nil
}

func initLogger(lvl string, path string) {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		panic(err)
	}

	var output io.Writer
	switch path {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		output, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			panic(err)
		}
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(output)
	logrus.SetLevel(level)
}
