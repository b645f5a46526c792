package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags carries the command-line parameters of the bookstore server. Unlike
// the file- and env-driven settings, the transport switches (ssl, http2) are
// startup parameters only and never come from the configuration tree.
type Flags struct {
	// Address overrides the listener address when set via -a.
	Address NetAddress

	// ConfigPath is the YAML configuration file path given via -c / -config.
	ConfigPath string

	// SSL enables TLS on the listener (-ssl). Default false.
	SSL bool

	// HTTP2 enables HTTP/2 on the listener (-http2). Default false.
	HTTP2 bool
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config yaml file path with configs
//	-ssl enable TLS on the listener
//	-http2 enable HTTP/2 on the listener
func ParseFlags() *Flags {
	f := &Flags{}

	flag.Var(&f.Address, "a", "Net address host:port")
	flag.StringVar(&f.ConfigPath, "c", "", "YAML config file path")
	flag.StringVar(&f.ConfigPath, "config", "", "YAML config file path (alias)")
	flag.BoolVar(&f.SSL, "ssl", false, "Enable TLS")
	flag.BoolVar(&f.HTTP2, "http2", false, "Enable HTTP/2")

	flag.Parse()

	return f
}

// Apply overlays the flag values onto cfg. Only flags the user actually set
// to a non-zero value take effect; flags never unset a file or env value.
func (f *Flags) Apply(cfg *Config) {
	if f.Address.Host != "" || f.Address.Port != 0 {
		cfg.Server.Host = f.Address.Host
		cfg.Server.Port = f.Address.Port
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 0 || port > 65535 {
		return errors.New("port number is out of range")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
