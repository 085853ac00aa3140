package auth_controller

import (
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

var client *upstream.Client

// Init wires the upstream client. Call once at startup.
func Init(c *upstream.Client) {
	client = c
}
