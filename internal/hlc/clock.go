// Package hlc реализует гибридные логические часы (Hybrid Logical Clock)
// для упорядочивания событий между устройствами без синхронизации
// физического времени. Метка времени совмещает физические миллисекунды
// и логический счетчик, поэтому сравнение устойчиво к рассинхронизации
// часов устройств, но остается близким к реальному времени.
package hlc

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// counterBits количество младших бит метки, отведенных под логический счетчик
const counterBits = 16

// counterMask маска логического счетчика
const counterMask = (1 << counterBits) - 1

// Clock представляет гибридные логические часы одного устройства.
type Clock struct {
	now      func() time.Time // источник физического времени (подменяется в тестах)
	deviceID string           // уникальный идентификатор устройства
	physical int64            // последнее наблюдавшееся физическое время (мс)
	counter  int64            // логический счетчик внутри одной миллисекунды
	mu       sync.Mutex       // мьютекс для потокобезопасности
}

// New создает новые часы с уникальным идентификатором устройства (UUID).
func New() *Clock {
	return NewWithDeviceID(uuid.New().String())
}

// NewWithDeviceID создает часы с заданным идентификатором устройства.
// Используется для тестирования или восстановления состояния.
func NewWithDeviceID(deviceID string) *Clock {
	return &Clock{
		deviceID: deviceID,
		now:      time.Now,
	}
}

// SetNowFunc подменяет источник физического времени. Только для тестов.
func (c *Clock) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = now
}

// Tick выдает новую метку времени для локального события.
// Метка строго больше всех ранее выданных и наблюдавшихся меток.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	pt := c.now().UnixMilli()
	if pt > c.physical {
		c.physical = pt
		c.counter = 0
	} else {
		c.counter++
	}

	return pack(c.physical, c.counter)
}

// Update обновляет часы по метке, полученной от другого устройства.
// Согласно алгоритму HLC: physical = max(local, remote, wall-clock),
// счетчик продвигается так, чтобы результат был строго больше
// обеих сторон. Возвращает новую метку.
func (c *Clock) Update(remote int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	pt := c.now().UnixMilli()
	remotePhysical, remoteCounter := unpack(remote)

	switch {
	case pt > c.physical && pt > remotePhysical:
		// Физическое время обгоняет обе метки - счетчик сбрасывается
		c.physical = pt
		c.counter = 0
	case remotePhysical > c.physical:
		// Удаленная метка новее - перенимаем ее и продвигаем счетчик
		c.physical = remotePhysical
		c.counter = remoteCounter + 1
	case remotePhysical == c.physical:
		// Метки в одной миллисекунде - берем больший счетчик
		if remoteCounter > c.counter {
			c.counter = remoteCounter
		}
		c.counter++
	default:
		// Локальная метка новее - просто продвигаем счетчик
		c.counter++
	}

	return pack(c.physical, c.counter)
}

// Current возвращает текущую метку без ее изменения.
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return pack(c.physical, c.counter)
}

// DeviceID возвращает идентификатор устройства.
func (c *Clock) DeviceID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deviceID
}

// Restore восстанавливает состояние часов из сохраненной метки
// (например, после перезапуска процесса).
func (c *Clock) Restore(timestamp int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	physical, counter := unpack(timestamp)
	if physical > c.physical || (physical == c.physical && counter > c.counter) {
		c.physical = physical
		c.counter = counter
	}
}

// pack упаковывает физическое время и счетчик в одну метку int64.
// Старшие 48 бит - миллисекунды, младшие 16 - счетчик, поэтому
// числовое сравнение меток совпадает с причинным порядком.
func pack(physical, counter int64) int64 {
	return physical<<counterBits | (counter & counterMask)
}

// unpack извлекает физическое время и счетчик из метки.
func unpack(timestamp int64) (physical, counter int64) {
	return timestamp >> counterBits, timestamp & counterMask
}
