package pointer

import (
	"github.com/xaionaro-go/avnative/types"
)

type ErrNullPointer = types.ErrNullPointer
type ErrContractViolation = types.ErrContractViolation
