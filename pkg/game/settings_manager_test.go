package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
// 环境受限无法创建时返回 nil，调用方 Skip
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	appName := fmt.Sprintf("spritelab_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil
	}

	// 注册清理函数，测试结束后删除测试目录
	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			testDir := filepath.Join(homeDir, ".local", "share", appName)
			os.RemoveAll(testDir)
		}
	})

	return manager
}

// TestSettingsManagerNilSafe gdataManager 为 nil 时降级为仅内存设置
func TestSettingsManagerNilSafe(t *testing.T) {
	sm := NewSettingsManager(nil)

	// 降级模式下 Load/Save 都不报错
	if err := sm.Load(); err != nil {
		t.Errorf("降级模式 Load 报错: %v", err)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 报错: %v", err)
	}

	// 默认设置可用
	if !sm.GetSettings().ShowHelp {
		t.Error("默认 ShowHelp 应为 true")
	}
	if sm.GetSettings().Fullscreen {
		t.Error("默认 Fullscreen 应为 false")
	}
}

// TestSettingsManagerSetters 修改仅作用于内存
func TestSettingsManagerSetters(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	sm.SetShowHelp(false)

	if !sm.GetSettings().Fullscreen {
		t.Error("SetFullscreen 未生效")
	}
	if sm.GetSettings().ShowHelp {
		t.Error("SetShowHelp 未生效")
	}
}

// TestSettingsSaveLoadRoundtrip 保存后用新实例加载得到相同设置
func TestSettingsSaveLoadRoundtrip(t *testing.T) {
	manager := createTestGdataManager(t, "roundtrip")
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	sm := NewSettingsManager(manager)
	sm.SetFullscreen(true)
	sm.SetShowHelp(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save 失败: %v", err)
	}

	// 新实例从同一存储加载
	sm2 := NewSettingsManager(manager)
	if !sm2.GetSettings().Fullscreen {
		t.Error("加载后 Fullscreen 丢失")
	}
	if sm2.GetSettings().ShowHelp {
		t.Error("加载后 ShowHelp 丢失")
	}
}
