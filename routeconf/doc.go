/*
Package routeconf loads mask route tables from YAML and registers them on a
mux.Router.

A table lists routes in matching order. Each route has either a mask or a
regular expression:

	prefix: /shop
	routes:
	  - name: product
	    mask: "product/<id ^\\d+$>[/<tab=overview>]"
	  - name: legacy
	    regexp: "^item-(?P<id>\\d+)\\.html$"
	    handler: product

Requests under prefix are matched with the prefix trimmed. Handlers are
looked up by the handler key, or by the route name when it is empty.
*/
package routeconf
