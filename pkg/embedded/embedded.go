package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/prompts/sonic_system_instruction.txt
var SonicSystemInstructionTxt []byte

//go:embed data/prompts/sonic_user_prompt.txt
var SonicUserPromptTxt []byte
