package app

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"github.com/yungbote/eduviz/internal/platform/logger"
)

// listenWithRetry binds addr, moving to the next port while the current one is in use,
// at most retries times. Port 0 binds an ephemeral port and never retries.
func listenWithRetry(addr string, retries int, log *logger.Logger) (net.Listener, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid listen addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port in %q", addr)
	}

	for attempt := 0; ; attempt++ {
		target := net.JoinHostPort(host, strconv.Itoa(port))
		ln, err := net.Listen("tcp", target)
		if err == nil {
			return ln, nil
		}
		if port == 0 || !errors.Is(err, syscall.EADDRINUSE) || attempt >= retries || port >= 65535 {
			return nil, fmt.Errorf("listen %s: %w", target, err)
		}
		log.Warn("port in use, trying next", "addr", target, "attempt", attempt+1)
		port++
	}
}
