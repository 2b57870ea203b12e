package models

import "time"

// EditLock представляет рекомендательную (advisory) аренду на редактирование
// одной сущности. Аренда ограничена по времени и не продлевается неявно:
// если держатель не вызвал renew до ExpiresAt, аренда истекает.
//
// Инвариант: в любой момент времени на сущность может существовать не более
// одной активной неистекшей аренды. Аренда никогда не блокирует обнаружение
// конфликтов - она лишь снижает вероятность параллельного редактирования,
// пока есть связность.
type EditLock struct {
	AcquiredAt time.Time     `json:"acquired_at"` // AcquiredAt время выдачи аренды
	ExpiresAt  time.Time     `json:"expires_at"`  // ExpiresAt абсолютное время истечения аренды
	EntityType EntityType    `json:"entity_type"` // EntityType тип сущности
	EntityID   string        `json:"entity_id"`   // EntityID идентификатор сущности
	DeviceID   string        `json:"device_id"`   // DeviceID устройство-держатель аренды
	TTL        time.Duration `json:"ttl"`         // TTL исходная длительность аренды (используется при renew)
	Active     bool          `json:"active"`      // Active флаг активности (false после release или истечения)
}

// IsExpired проверяет, истекла ли аренда на момент now.
// Истечение оценивается лениво при каждом обращении.
func (l *EditLock) IsExpired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// IsHeld возвращает true, если аренда активна и не истекла на момент now.
func (l *EditLock) IsHeld(now time.Time) bool {
	return l.Active && !l.IsExpired(now)
}

// Clone создает копию аренды
func (l *EditLock) Clone() *EditLock {
	clone := *l
	return &clone
}
