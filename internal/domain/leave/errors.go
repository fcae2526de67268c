package leave

import "errors"

var ErrLedgerNotFound = errors.New("leave ledger not found")
