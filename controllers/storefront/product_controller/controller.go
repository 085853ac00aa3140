package product_controller

import (
	"github.com/cuongluu0705/Online-Electronics-Selling-System/catalog"
)

var poller *catalog.Poller

// Init wires the catalog poller. Call once at startup.
func Init(p *catalog.Poller) {
	poller = p
}
