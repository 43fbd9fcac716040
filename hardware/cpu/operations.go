// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/famicore/hardware/cpu/registers"
)

// Lda loads the accumulator.
func (mc *CPU) Lda(value uint8) {
	mc.A.Load(value)
	mc.Status.UpdateZeroNegative(value)
}

// Ldx loads the X register.
func (mc *CPU) Ldx(value uint8) {
	mc.X.Load(value)
	mc.Status.UpdateZeroNegative(value)
}

// Ldy loads the Y register.
func (mc *CPU) Ldy(value uint8) {
	mc.Y.Load(value)
	mc.Status.UpdateZeroNegative(value)
}

// Sta stores the accumulator at address.
func (mc *CPU) Sta(address uint16) {
	mc.mem.Write(address, mc.A.Value())
}

// Stx stores the X register at address.
func (mc *CPU) Stx(address uint16) {
	mc.mem.Write(address, mc.X.Value())
}

// Sty stores the Y register at address.
func (mc *CPU) Sty(address uint16) {
	mc.mem.Write(address, mc.Y.Value())
}

// transfer loads the value of one register into another and updates the
// zero/negative flags from the value.
func (mc *CPU) transfer(dest *registers.Register, value uint8) {
	dest.Load(value)
	mc.Status.UpdateZeroNegative(value)
}

// Tax transfers the accumulator to X.
func (mc *CPU) Tax() {
	mc.transfer(&mc.X, mc.A.Value())
}

// Tay transfers the accumulator to Y.
func (mc *CPU) Tay() {
	mc.transfer(&mc.Y, mc.A.Value())
}

// Txa transfers X to the accumulator.
func (mc *CPU) Txa() {
	mc.transfer(&mc.A, mc.X.Value())
}

// Tya transfers Y to the accumulator.
func (mc *CPU) Tya() {
	mc.transfer(&mc.A, mc.Y.Value())
}

// Tsx transfers the stack pointer to X.
func (mc *CPU) Tsx() {
	mc.transfer(&mc.X, mc.SP.Value())
}

// Txs transfers X to the stack pointer. Flags are not affected.
func (mc *CPU) Txs() {
	mc.SP.Load(mc.X.Value())
}

// Pha pushes the accumulator.
func (mc *CPU) Pha() {
	mc.Push(mc.A.Value())
}

// Php pushes the packed status register.
func (mc *CPU) Php() {
	mc.Push(mc.Status.Value())
}

// Pla pulls the accumulator.
func (mc *CPU) Pla() {
	mc.Lda(mc.Pull())
}

// Plp pulls the status register.
func (mc *CPU) Plp() {
	mc.Status.Load(mc.Pull())
}

// And performs a bitwise AND with the accumulator.
func (mc *CPU) And(value uint8) {
	mc.A.AND(value)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

// Eor performs a bitwise exclusive OR with the accumulator.
func (mc *CPU) Eor(value uint8) {
	mc.A.EOR(value)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

// Ora performs a bitwise OR with the accumulator.
func (mc *CPU) Ora(value uint8) {
	mc.A.ORA(value)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

// Bit tests the accumulator against value without changing the accumulator.
// All three flags are taken from the result of the AND.
func (mc *CPU) Bit(value uint8) {
	r := registers.NewRegister(mc.A.Value(), "")
	r.AND(value)
	mc.Status.Zero = r.IsZero()
	mc.Status.Overflow = r.IsBitV()
	mc.Status.Negative = r.IsNegative()
}

// Adc adds value and the carry flag to the accumulator.
func (mc *CPU) Adc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

// Sbc subtracts value from the accumulator. A clear carry flag subtracts an
// additional one.
func (mc *CPU) Sbc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.Status.UpdateZeroNegative(mc.A.Value())
}

// compare sets the flags according to the subtraction of value from the
// register. The register is not changed.
func (mc *CPU) compare(r registers.Register, value uint8) {
	var result uint8
	mc.Status.Carry, result = r.Compare(value)
	mc.Status.UpdateZeroNegative(result)
}

// Cmp compares the accumulator with value.
func (mc *CPU) Cmp(value uint8) {
	mc.compare(mc.A, value)
}

// Cpx compares X with value.
func (mc *CPU) Cpx(value uint8) {
	mc.compare(mc.X, value)
}

// Cpy compares Y with value.
func (mc *CPU) Cpy(value uint8) {
	mc.compare(mc.Y, value)
}

// Inc increments the value at address. The carry flag is not affected.
func (mc *CPU) Inc(address uint16) {
	mc.acc8.Load(mc.mem.Read(address))
	mc.acc8.Increment()
	mc.mem.Write(address, mc.acc8.Value())
	mc.Status.UpdateZeroNegative(mc.acc8.Value())
}

// Dec decrements the value at address. The carry flag is not affected.
func (mc *CPU) Dec(address uint16) {
	mc.acc8.Load(mc.mem.Read(address))
	mc.acc8.Decrement()
	mc.mem.Write(address, mc.acc8.Value())
	mc.Status.UpdateZeroNegative(mc.acc8.Value())
}

// Inx increments X.
func (mc *CPU) Inx() {
	mc.X.Increment()
	mc.Status.UpdateZeroNegative(mc.X.Value())
}

// Iny increments Y.
func (mc *CPU) Iny() {
	mc.Y.Increment()
	mc.Status.UpdateZeroNegative(mc.Y.Value())
}

// Dex decrements X.
func (mc *CPU) Dex() {
	mc.X.Decrement()
	mc.Status.UpdateZeroNegative(mc.X.Value())
}

// Dey decrements Y.
func (mc *CPU) Dey() {
	mc.Y.Decrement()
	mc.Status.UpdateZeroNegative(mc.Y.Value())
}

// Asl shifts the target one bit to the left. Bit seven goes into the carry.
func (mc *CPU) Asl(t Target) {
	mc.modify(t, func(r *registers.Register) bool {
		return r.ASL()
	})
}

// Lsr shifts the target one bit to the right. Bit zero goes into the carry.
func (mc *CPU) Lsr(t Target) {
	mc.modify(t, func(r *registers.Register) bool {
		return r.LSR()
	})
}

// Rol rotates the target one bit to the left. Bit seven goes into bit zero
// and into the carry. The previous carry is not used.
func (mc *CPU) Rol(t Target) {
	mc.modify(t, func(r *registers.Register) bool {
		return r.ROL(r.IsNegative())
	})
}

// Ror rotates the target one bit to the right. Bit zero goes into bit seven
// and into the carry. The previous carry is not used.
func (mc *CPU) Ror(t Target) {
	mc.modify(t, func(r *registers.Register) bool {
		return r.ROR(r.Value()&0x01 == 0x01)
	})
}

// Jmp sets the PC.
func (mc *CPU) Jmp(address uint16) {
	mc.PC.Load(address)
}

// Jsr pushes the PC, high byte first, and then jumps to address.
func (mc *CPU) Jsr(address uint16) {
	mc.push16(mc.PC.Address())
	mc.PC.Load(address)
}

// Rts pulls the PC, low byte first. It is the inverse of Jsr.
func (mc *CPU) Rts() {
	mc.PC.Load(mc.pull16())
}

// branch displaces the PC if flag is true. Returns flag.
func (mc *CPU) branch(flag bool, displacement int8) bool {
	if flag {
		mc.PC.Displace(displacement)
	}
	return flag
}

// Bcc branches if the carry flag is clear. Returns true if the branch was
// taken.
func (mc *CPU) Bcc(displacement int8) bool {
	return mc.branch(!mc.Status.Carry, displacement)
}

// Bcs branches if the carry flag is set.
func (mc *CPU) Bcs(displacement int8) bool {
	return mc.branch(mc.Status.Carry, displacement)
}

// Beq branches if the zero flag is set.
func (mc *CPU) Beq(displacement int8) bool {
	return mc.branch(mc.Status.Zero, displacement)
}

// Bmi branches if the negative flag is set.
func (mc *CPU) Bmi(displacement int8) bool {
	return mc.branch(mc.Status.Negative, displacement)
}

// Bne branches if the zero flag is clear.
func (mc *CPU) Bne(displacement int8) bool {
	return mc.branch(!mc.Status.Zero, displacement)
}

// Bpl branches if the negative flag is clear.
func (mc *CPU) Bpl(displacement int8) bool {
	return mc.branch(!mc.Status.Negative, displacement)
}

// Bvc branches if the overflow flag is clear.
func (mc *CPU) Bvc(displacement int8) bool {
	return mc.branch(!mc.Status.Overflow, displacement)
}

// Bvs branches if the overflow flag is set.
func (mc *CPU) Bvs(displacement int8) bool {
	return mc.branch(mc.Status.Overflow, displacement)
}

// Clc clears the carry flag.
func (mc *CPU) Clc() {
	mc.Status.Carry = false
}

// Cld clears the decimal mode flag.
func (mc *CPU) Cld() {
	mc.Status.DecimalMode = false
}

// Cli clears the interrupt disable flag.
func (mc *CPU) Cli() {
	mc.Status.InterruptDisable = false
}

// Clv clears the overflow flag.
func (mc *CPU) Clv() {
	mc.Status.Overflow = false
}

// Sec sets the carry flag.
func (mc *CPU) Sec() {
	mc.Status.Carry = true
}

// Sed sets the decimal mode flag. Arithmetic is always binary.
func (mc *CPU) Sed() {
	mc.Status.DecimalMode = true
}

// Sei sets the interrupt disable flag.
func (mc *CPU) Sei() {
	mc.Status.InterruptDisable = true
}

// Brk pushes the PC plus two, high byte first. It then sets the break flag,
// pushes the status register and loads the PC from the BRK vector.
func (mc *CPU) Brk() {
	mc.push16(mc.PC.Address() + 2)
	mc.Status.Break = true
	mc.Push(mc.Status.Value())
	mc.LoadPCIndirect(BRK)
}

// Rti pulls the status register and then the PC, low byte first. It is the
// inverse of Brk.
func (mc *CPU) Rti() {
	mc.Status.Load(mc.Pull())
	mc.PC.Load(mc.pull16())
}

// Nop does nothing.
func (mc *CPU) Nop() {
}
