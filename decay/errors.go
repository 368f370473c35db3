// SPDX-License-Identifier: MIT

package decay

import "github.com/cockroachdb/errors"

// ErrInvalidParameter indicates a Distribution factory received σ ≤ 0 or a
// non-finite parameter.
var ErrInvalidParameter = errors.New("decay: invalid distribution parameter")
