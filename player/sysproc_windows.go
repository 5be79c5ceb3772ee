//go:build windows

package player

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	// CREATE_NEW_PROCESS_GROUP
	return &syscall.SysProcAttr{
		CreationFlags: 0x00000200,
	}
}
