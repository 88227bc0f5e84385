package core

// Protocol-wide capacity bounds. These cap the worst-case complexity of a
// single transaction; appending past a bound is a fatal error, so they must
// be sized for the heaviest supported call tree. Serialized lengths derive
// from them, so changing a constant changes every proof and encoding with it.
const (
	MaxReadRequestsPerCall                  = 32
	MaxNewCommitmentsPerCall                = 16
	MaxNewNullifiersPerCall                 = 16
	MaxNullifierKeyValidationRequestsPerCall = 1
	MaxPrivateCallStackDepthPerCall         = 4
	MaxPublicCallStackDepthPerCall          = 4
	MaxNewL2ToL1MsgsPerCall                 = 2
	ReturnValuesLength                      = 4

	MaxReadRequestsPerTx                  = 128
	MaxNewCommitmentsPerTx                = 64
	MaxNewNullifiersPerTx                 = 64
	MaxNullifierKeyValidationRequestsPerTx = 4
	MaxPrivateCallStackDepthPerTx         = 8
	MaxPublicCallStackDepthPerTx          = 8
	MaxNewL2ToL1MsgsPerTx                 = 16
	MaxNewContractsPerTx                  = 1
	MaxPublicDataReadsPerTx               = 16
	MaxPublicDataUpdateRequestsPerTx      = 16
)

// Serialized field-vector lengths, one felt per scalar.
const (
	SideEffectLength              = 2
	SideEffectLinkedLength        = 3
	CallerContextLength           = 2
	CallRequestLength             = 6
	CallContextLength             = 8
	FunctionDataLength            = 4
	NullifierKeyValidationRequestLength        = 3
	NullifierKeyValidationRequestContextLength = 4
	ContractDeploymentDataLength  = 5
	NewContractDataLength         = 3
	GlobalVariablesLength         = 4
	HeaderLength                  = 6 + GlobalVariablesLength
	TxContextLength               = 3 + ContractDeploymentDataLength
	TxRequestLength               = 2 + FunctionDataLength + TxContextLength

	PrivateCircuitPublicInputsLength = CallContextLength +
		1 + // args hash
		ReturnValuesLength +
		MaxReadRequestsPerCall*SideEffectLength +
		MaxNullifierKeyValidationRequestsPerCall*NullifierKeyValidationRequestLength +
		MaxNewCommitmentsPerCall*SideEffectLength +
		MaxNewNullifiersPerCall*SideEffectLinkedLength +
		MaxPrivateCallStackDepthPerCall +
		MaxPublicCallStackDepthPerCall +
		MaxNewL2ToL1MsgsPerCall +
		4 + // log hashes and preimage lengths
		HeaderLength +
		ContractDeploymentDataLength +
		2 // chain id, version
)
