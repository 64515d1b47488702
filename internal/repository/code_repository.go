package repository

import (
	"context"

	redisapp "halarcraft/internal/storage/redis"
)

// RedisCodeRepo хранит найденные секретные коды как множество на игрока.
// SADD даёт идемпотентность: повторный claim того же кода ничего не меняет.
type RedisCodeRepo struct {
	Client *redisapp.Client
}

func NewRedisCodeRepo(client *redisapp.Client) *RedisCodeRepo {
	return &RedisCodeRepo{Client: client}
}

func (r *RedisCodeRepo) Claim(ctx context.Context, userID, codeID string) (bool, error) {
	added, err := r.Client.SAdd(ctx, claimedCodesKey(userID), codeID).Result()
	if err != nil {
		return false, err
	}
	return added == 1, nil
}

func (r *RedisCodeRepo) IsClaimed(ctx context.Context, userID, codeID string) (bool, error) {
	return r.Client.SIsMember(ctx, claimedCodesKey(userID), codeID).Result()
}

func (r *RedisCodeRepo) ClaimedCodes(ctx context.Context, userID string) ([]string, error) {
	return r.Client.SMembers(ctx, claimedCodesKey(userID)).Result()
}

func claimedCodesKey(userID string) string {
	return "codes:" + userID
}
