// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// SubRequest is one logical operation inside a physical batch request.
// It names the target resource and operation; Params is the operation's
// input, decoded by the registered handler.
type SubRequest struct {
	Resource  string          `json:"resource"`
	Operation string          `json:"operation"`
	Params    json.RawMessage `json:"params,omitempty"`
}

// SubResponse is the outcome of one sub-request. Status follows the
// HTTP-equivalent mapping of error kinds; sub-requests skipped after a
// terminating failure carry StatusNotProcessed.
type SubResponse struct {
	Status      int             `json:"status"`
	Body        json.RawMessage `json:"body,omitempty"`
	ErrorDetail string          `json:"error_detail,omitempty"`
}

// BatchRequest is the wire shape of a physical batch call.
type BatchRequest struct {
	Requests []SubRequest `json:"requests"`
}

// BatchResponse carries one SubResponse per submitted SubRequest, in
// submission order.
type BatchResponse struct {
	Responses []SubResponse `json:"responses"`
}
