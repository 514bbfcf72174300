// Package mqtt feeds notifications from an MQTT topic into the widget.
package mqtt

import (
	"fmt"
	"os"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

const timeout = 5 * time.Second

// Options configures the subscriber.
type Options struct {
	Broker   string
	Topic    string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// Handler receives each message payload.
type Handler func(message string)

// Subscriber is a live subscription. Stop disconnects it.
type Subscriber struct {
	client pahomqtt.Client
}

func clientOptions(o Options, h Handler) *pahomqtt.ClientOptions {
	clientID := o.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("luwidget-%d", os.Getpid())
	}
	opts := pahomqtt.NewClientOptions().
		AddBroker(o.Broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout).
		SetAutoReconnect(true).
		// Handlers may block on window creation; run each in its own
		// goroutine rather than stalling the router.
		SetOrderMatters(false)

	if o.Username != "" {
		opts.SetUsername(o.Username)
	}
	if o.Password != "" {
		opts.SetPassword(o.Password)
	}

	// Subscribing in the connect handler restores the subscription after
	// every reconnect.
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		tok := c.Subscribe(o.Topic, o.QoS, func(_ pahomqtt.Client, m pahomqtt.Message) {
			h(string(m.Payload()))
		})
		if tok.WaitTimeout(timeout) && tok.Error() != nil {
			fmt.Fprintf(os.Stderr, "luwidget: mqtt: subscribe %s: %v\n", o.Topic, tok.Error())
		}
	})
	return opts
}

// Subscribe connects to the broker and calls h for every message on the
// topic until Stop is called. The connection is re-established on loss.
func Subscribe(o Options, h Handler) (*Subscriber, error) {
	if o.Topic == "" {
		return nil, fmt.Errorf("mqtt: topic is required")
	}
	client := pahomqtt.NewClient(clientOptions(o, h))
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return nil, fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	return &Subscriber{client: client}, nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
}
