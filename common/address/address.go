// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check 地址计算与校验
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/33cn/twothirds/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

// MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// address errors
var (
	ErrDecode        = errors.New("ErrAddressDecode")
	ErrTooShort      = errors.New("ErrAddressTooShort")
	ErrChecksum      = errors.New("ErrAddressChecksum")
	ErrExecNameLimit = errors.New("ErrExecNameTooLong")
)

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

// ExecPubKey 执行器的虚拟公钥, 没有对应的私钥
func ExecPubKey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic("name too long")
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

// ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(ExecPubKey(name)).String()
	addressCache.Add(name, addrstr)
	return addrstr
}

// PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = common.CopyBytes(in)
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

// PubKeyToAddr 公钥转为地址字符串
func PubKeyToAddr(in []byte) string {
	return PubKeyToAddress(in).String()
}

// CheckAddress 检查地址, 结果会被缓存
func CheckAddress(addr string) (e error) {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value == nil {
			return nil
		}
		return value.(error)
	}
	_, e = decode(addr)
	if e != nil {
		checkAddressCache.Add(addr, e)
		return e
	}
	checkAddressCache.Add(addr, nil)
	return nil
}

func decode(addr string) ([]byte, error) {
	dec := base58.Decode(addr)
	if len(dec) == 0 {
		return nil, ErrDecode
	}
	if len(dec) != 25 {
		return nil, errors.New(ErrTooShort.Error() + " " + hex.EncodeToString(dec))
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, ErrChecksum
	}
	return dec, nil
}

// NewAddrFromString new 地址
func NewAddrFromString(hs string) (*Address, error) {
	dec, err := decode(hs)
	if err != nil {
		return nil, err
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = make([]byte, 4)
	copy(a.Checksum, dec[21:25])
	a.Enc58str = hs
	return a, nil
}

// Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}
