package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdClear, "Clear"},
		{CmdSetColor, "SetColor"},
		{CmdPushAttrib, "PushAttrib"},
		{CmdRotate, "Rotate"},
		{CmdDrawElements, "DrawElements"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestCommandTypesMatch(t *testing.T) {
	cmds := []struct {
		cmd  Command
		want CommandType
	}{
		{ClearCommand{}, CmdClear},
		{SetColorCommand{}, CmdSetColor},
		{SetPolygonModeCommand{}, CmdSetPolygonMode},
		{EnableCommand{}, CmdEnable},
		{DisableCommand{}, CmdDisable},
		{PushAttribCommand{}, CmdPushAttrib},
		{PopAttribCommand{}, CmdPopAttrib},
		{PushMatrixCommand{}, CmdPushMatrix},
		{PopMatrixCommand{}, CmdPopMatrix},
		{TranslateCommand{}, CmdTranslate},
		{ScaleCommand{}, CmdScale},
		{RotateCommand{}, CmdRotate},
		{DrawArraysCommand{}, CmdDrawArrays},
		{DrawElementsCommand{}, CmdDrawElements},
	}
	for _, tt := range cmds {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestRefValidity(t *testing.T) {
	if VertexRef(InvalidRef).IsValid() {
		t.Error("VertexRef(InvalidRef) should be invalid")
	}
	if IndexRef(InvalidRef).IsValid() {
		t.Error("IndexRef(InvalidRef) should be invalid")
	}
	if !VertexRef(0).IsValid() || !IndexRef(0).IsValid() {
		t.Error("zero refs should be valid")
	}
}
