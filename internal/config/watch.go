package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the file at path whenever it changes and hands the freshly
// decoded config to onChange. A file that fails validation is reported through
// onError and the previous config stays in effect.
func Watch(path string, onChange func(*AppConfig), onError func(error)) error {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(v)
		if err != nil {
			onError(fmt.Errorf("config.Watch -> %s -> %w", e.Name, err))
			return
		}

		onChange(conf)
	})
	v.WatchConfig()

	return nil
}
